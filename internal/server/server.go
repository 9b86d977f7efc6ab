// Package server exposes the HTTP/JSON API consumed by the clients.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Server wires the API routes to the store.
type Server struct {
	log hclog.Logger
}

func New(log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Server{log: log}
}

// Handler returns the full route table wrapped in CORS and request
// logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/tasks", s.listTasks)
	mux.HandleFunc("POST /api/tasks", s.createTask)
	mux.HandleFunc("GET /api/tasks/{id}", s.getTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.updateTask)
	mux.HandleFunc("PATCH /api/tasks/{id}/status", s.patchTaskStatus)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.deleteTask)

	mux.HandleFunc("GET /api/notes", s.listNotes)
	mux.HandleFunc("POST /api/notes", s.createNote)
	mux.HandleFunc("PUT /api/notes/{id}", s.updateNote)
	mux.HandleFunc("PATCH /api/notes/{id}/pin", s.patchNotePin)
	mux.HandleFunc("DELETE /api/notes/{id}", s.deleteNote)

	mux.HandleFunc("GET /api/statistics", s.getStatistics)
	mux.HandleFunc("GET /api/activity", s.getActivity)
	mux.HandleFunc("POST /api/pomodoro", s.createPomodoro)
	mux.HandleFunc("GET /api/settings", s.getSettings)
	mux.HandleFunc("PUT /api/settings/{key}", s.putSetting)
	mux.HandleFunc("GET /api/export", s.getExport)

	return s.withCORS(s.withLogging(mux))
}

// ListenAndServe runs the API server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// withCORS mirrors the permissive browser policy of a single-user local
// app: any origin, any header.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func pathID(r *http.Request) (uint, error) {
	value := r.PathValue("id")
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return uint(id), nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// parseDate accepts either a bare calendar date or a full timestamp.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	return &parsed, nil
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// writeMessage is the success envelope shared by all mutating routes.
func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]string{"message": message})
}

func writeCreated(w http.ResponseWriter, id uint, message string) {
	writeJSON(w, map[string]any{"id": id, "message": message})
}

// writeError surfaces the raw error message; the design distinguishes
// no structured error kinds.
func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
