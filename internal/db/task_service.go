package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task. Omitted
// optional fields resolve to the documented defaults.
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Tags        string
	DueDate     *time.Time
	Category    string
}

// UpdateTaskRequest is a full-replace payload: omitted fields overwrite
// existing values with their zero value.
type UpdateTaskRequest struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Tags        string
	DueDate     *time.Time
	Category    string
	TimeSpent   int
}

// TaskQueryOptions are listing filters. All provided filters combine
// with AND; Search is a case-sensitive substring match on title or
// description.
type TaskQueryOptions struct {
	Status   string
	Priority string
	Category string
	Search   string
}

// CreateTask creates a new task, applying defaults for omitted fields,
// and records a "create" activity entry.
func CreateTask(req CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        req.Tags,
		DueDate:     req.DueDate,
		Category:    req.Category,
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = "general"
	}

	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	LogActivity(models.ActionCreate, models.ItemTask, task.ID, "Created task: "+task.Title)

	return &task, nil
}

// GetTasks retrieves tasks matching all provided filters, newest first.
func GetTasks(opts TaskQueryOptions) ([]models.Task, error) {
	query := DB.Model(&models.Task{})

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Priority != "" {
		query = query.Where("priority = ?", opts.Priority)
	}
	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		// instr keeps the match case-sensitive, unlike SQLite's LIKE.
		query = query.Where("instr(title, ?) > 0 OR instr(description, ?) > 0", opts.Search, opts.Search)
	}

	tasks := []models.Task{}
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// GetTaskByID retrieves a task by ID. A missing ID is not an error:
// callers get (nil, nil) and must treat absence as a valid result.
func GetTaskByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces the full task field set and refreshes updated_at.
// completed_at is deliberately left alone: the status patch owns it.
func UpdateTask(id uint, req UpdateTaskRequest) error {
	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"status":      req.Status,
		"priority":    req.Priority,
		"tags":        req.Tags,
		"due_date":    req.DueDate,
		"category":    req.Category,
		"time_spent":  req.TimeSpent,
		"updated_at":  time.Now(),
	}

	if err := DB.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}

	LogActivity(models.ActionUpdate, models.ItemTask, id, "Updated task: "+req.Title)
	return nil
}

// UpdateTaskStatus patches only the status. completed_at is set to now
// if and only if the new status is "done", cleared otherwise. A
// "complete" activity entry is recorded only for the done transition.
func UpdateTaskStatus(id uint, status string) error {
	var completedAt *time.Time
	if status == models.StatusDone {
		now := time.Now()
		completedAt = &now
	}

	updates := map[string]interface{}{
		"status":       status,
		"completed_at": completedAt,
		"updated_at":   time.Now(),
	}

	if err := DB.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}

	if status == models.StatusDone {
		LogActivity(models.ActionComplete, models.ItemTask, id, "Completed task")
	}
	return nil
}

// DeleteTask removes a task by ID. Deleting a non-existent ID succeeds
// silently.
func DeleteTask(id uint) error {
	if err := DB.Delete(&models.Task{}, id).Error; err != nil {
		return err
	}

	LogActivity(models.ActionDelete, models.ItemTask, id, "Deleted task")
	return nil
}
