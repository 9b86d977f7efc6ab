package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

// CreateNoteRequest holds the data needed to create a new note.
type CreateNoteRequest struct {
	Title    string
	Content  string
	Color    string
	Category string
	IsPinned bool
}

// UpdateNoteRequest is a full-replace payload, mirroring tasks.
type UpdateNoteRequest struct {
	Title    string
	Content  string
	Color    string
	Category string
	IsPinned bool
}

// NoteQueryOptions are listing filters for notes.
type NoteQueryOptions struct {
	Category string
	Search   string
}

// CreateNote creates a new note, applying defaults, and records a
// "create" activity entry.
func CreateNote(req CreateNoteRequest) (*models.Note, error) {
	note := models.Note{
		Title:    req.Title,
		Content:  req.Content,
		Color:    req.Color,
		Category: req.Category,
		IsPinned: req.IsPinned,
	}
	if note.Color == "" {
		note.Color = models.DefaultNoteColor
	}
	if note.Category == "" {
		note.Category = "general"
	}

	if err := DB.Create(&note).Error; err != nil {
		return nil, err
	}

	LogActivity(models.ActionCreate, models.ItemNote, note.ID, "Created note: "+note.Title)

	return &note, nil
}

// GetNotes retrieves notes matching all provided filters, pinned first,
// then newest first.
func GetNotes(opts NoteQueryOptions) ([]models.Note, error) {
	query := DB.Model(&models.Note{})

	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		query = query.Where("instr(title, ?) > 0 OR instr(content, ?) > 0", opts.Search, opts.Search)
	}

	notes := []models.Note{}
	if err := query.Order("is_pinned DESC, created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNoteByID retrieves a note by ID, (nil, nil) when absent.
func GetNoteByID(id uint) (*models.Note, error) {
	var note models.Note
	if err := DB.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces the full note field set and refreshes updated_at.
// Unlike tasks, note updates record no activity entry.
func UpdateNote(id uint, req UpdateNoteRequest) error {
	updates := map[string]interface{}{
		"title":      req.Title,
		"content":    req.Content,
		"color":      req.Color,
		"category":   req.Category,
		"is_pinned":  req.IsPinned,
		"updated_at": time.Now(),
	}

	return DB.Model(&models.Note{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateNotePin patches only the pin flag. No activity entry.
func UpdateNotePin(id uint, pinned bool) error {
	return DB.Model(&models.Note{}).Where("id = ?", id).
		Update("is_pinned", pinned).Error
}

// DeleteNote removes a note by ID, silently succeeding for missing IDs,
// and records a "delete" activity entry.
func DeleteNote(id uint) error {
	if err := DB.Delete(&models.Note{}, id).Error; err != nil {
		return err
	}

	LogActivity(models.ActionDelete, models.ItemNote, id, "Deleted note")
	return nil
}
