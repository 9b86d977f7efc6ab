package server

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

type noteBody struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Color    string `json:"color"`
	Category string `json:"category"`
	IsPinned bool   `json:"is_pinned"`
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	notes, err := db.GetNotes(db.NoteQueryOptions{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, notes)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var body noteBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	note, err := db.CreateNote(db.CreateNoteRequest{
		Title:    body.Title,
		Content:  body.Content,
		Color:    body.Color,
		Category: body.Category,
		IsPinned: body.IsPinned,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeCreated(w, note.ID, "Note created successfully")
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body noteBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err = db.UpdateNote(id, db.UpdateNoteRequest{
		Title:    body.Title,
		Content:  body.Content,
		Color:    body.Color,
		Category: body.Category,
		IsPinned: body.IsPinned,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Note updated successfully")
}

func (s *Server) patchNotePin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		IsPinned bool `json:"is_pinned"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := db.UpdateNotePin(id, body.IsPinned); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Note pin status updated")
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := db.DeleteNote(id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Note deleted successfully")
}
