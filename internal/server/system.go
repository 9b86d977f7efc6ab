package server

import (
	"net/http"
	"strconv"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

func (s *Server) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := db.GetStatistics()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, stats)
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			limit = parsed
		}
	}

	entries, err := db.GetRecentActivity(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, entries)
}

func (s *Server) createPomodoro(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TaskID    *uint `json:"task_id"`
		Duration  int   `json:"duration"`
		Completed bool  `json:"completed"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	session, err := db.SavePomodoroSession(body.TaskID, body.Duration, body.Completed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeCreated(w, session.ID, "Pomodoro session saved")
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := db.GetSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, settings)
}

func (s *Server) putSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var body struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := db.UpsertSetting(key, body.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Setting updated successfully")
}

func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := db.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, snapshot)
}
