package db

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

func TestGetStatisticsEmptyCollections(t *testing.T) {
	setupTestDB(t)

	stats, err := GetStatistics()
	require.NoError(t, err)

	assert.Zero(t, stats.Tasks.Total)
	assert.Zero(t, stats.Tasks.Completed)
	assert.Zero(t, stats.Tasks.TotalTime)
	assert.Zero(t, stats.Notes.Total)
	assert.Zero(t, stats.CompletedToday)
	assert.Empty(t, stats.Priority)
	assert.Empty(t, stats.Categories)
}

func TestGetStatisticsCountsAddUp(t *testing.T) {
	setupTestDB(t)

	a, err := CreateTask(CreateTaskRequest{Title: "a", Priority: models.PriorityHigh, Category: "work"})
	require.NoError(t, err)
	b, err := CreateTask(CreateTaskRequest{Title: "b", Priority: models.PriorityHigh, Category: "home"})
	require.NoError(t, err)
	_, err = CreateTask(CreateTaskRequest{Title: "c", Priority: models.PriorityLow, Category: "work"})
	require.NoError(t, err)

	require.NoError(t, UpdateTaskStatus(a.ID, models.StatusDone))
	require.NoError(t, UpdateTaskStatus(b.ID, models.StatusInProgress))

	_, err = CreateNote(CreateNoteRequest{Title: "n"})
	require.NoError(t, err)

	stats, err := GetStatistics()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.Tasks.Total)
	assert.EqualValues(t, 1, stats.Tasks.Completed)
	assert.EqualValues(t, 1, stats.Tasks.InProgress)
	assert.EqualValues(t, 1, stats.Tasks.Todo)
	assert.Equal(t, stats.Tasks.Total, stats.Tasks.Completed+stats.Tasks.InProgress+stats.Tasks.Todo)
	assert.EqualValues(t, 1, stats.Notes.Total)
	assert.EqualValues(t, 1, stats.CompletedToday)

	var prioritySum int64
	for _, row := range stats.Priority {
		prioritySum += row.Count
	}
	assert.Equal(t, stats.Tasks.Total, prioritySum)

	var categorySum int64
	for _, row := range stats.Categories {
		categorySum += row.Count
	}
	assert.Equal(t, stats.Tasks.Total, categorySum)
}

func TestCompletedTodayIgnoresOlderCompletions(t *testing.T) {
	setupTestDB(t)

	task, err := CreateTask(CreateTaskRequest{Title: "old win"})
	require.NoError(t, err)
	require.NoError(t, UpdateTaskStatus(task.ID, models.StatusDone))

	// Backdate the completion to yesterday.
	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, DB.Model(&models.Task{}).Where("id = ?", task.ID).
		Update("completed_at", yesterday).Error)

	stats, err := GetStatistics()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Tasks.Completed)
	assert.Zero(t, stats.CompletedToday)
}

func TestExportSnapshotRoundTrips(t *testing.T) {
	setupTestDB(t)

	due := time.Date(2026, 9, 1, 23, 59, 59, 0, time.Local)
	_, err := CreateTask(CreateTaskRequest{Title: "ship", DueDate: &due, Tags: "release,v2"})
	require.NoError(t, err)
	_, err = CreateTask(CreateTaskRequest{Title: "retro"})
	require.NoError(t, err)
	_, err = CreateNote(CreateNoteRequest{Title: "minutes", Content: "…", IsPinned: true})
	require.NoError(t, err)

	snapshot, err := Export()
	require.NoError(t, err)

	exportedAt, err := time.Parse(time.RFC3339, snapshot.ExportDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), exportedAt, time.Minute)

	tasks, err := GetTasks(TaskQueryOptions{})
	require.NoError(t, err)
	notes, err := GetNotes(NoteQueryOptions{})
	require.NoError(t, err)

	sortByID := cmpopts.SortSlices(func(a, b models.Task) bool { return a.ID < b.ID })
	if diff := cmp.Diff(tasks, snapshot.Tasks, sortByID); diff != "" {
		t.Errorf("exported tasks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(notes, snapshot.Notes); diff != "" {
		t.Errorf("exported notes mismatch (-want +got):\n%s", diff)
	}
}
