package server

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/db"
)

// taskBody is the wire form of a task create/update payload. due_date
// travels as a string so bare calendar dates are accepted.
type taskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Tags        string `json:"tags"`
	DueDate     string `json:"due_date"`
	Category    string `json:"category"`
	TimeSpent   int    `json:"time_spent"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks, err := db.GetTasks(db.TaskQueryOptions{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Absence is a valid result: a missing id encodes as a null body,
	// not a 404.
	task, err := db.GetTaskByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, task)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dueDate, err := parseDate(body.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	task, err := db.CreateTask(db.CreateTaskRequest{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		Tags:        body.Tags,
		DueDate:     dueDate,
		Category:    body.Category,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeCreated(w, task.ID, "Task created successfully")
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body taskBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dueDate, err := parseDate(body.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err = db.UpdateTask(id, db.UpdateTaskRequest{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		Tags:        body.Tags,
		DueDate:     dueDate,
		Category:    body.Category,
		TimeSpent:   body.TimeSpent,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Task updated successfully")
}

func (s *Server) patchTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := db.UpdateTaskStatus(id, body.Status); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Status updated successfully")
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := db.DeleteTask(id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeMessage(w, "Task deleted successfully")
}
