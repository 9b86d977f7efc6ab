package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePomodoroSession(t *testing.T) {
	setupTestDB(t)

	task, err := CreateTask(CreateTaskRequest{Title: "deep work"})
	require.NoError(t, err)

	linked, err := SavePomodoroSession(&task.ID, 25, true)
	require.NoError(t, err)
	require.NotNil(t, linked.TaskID)
	assert.Equal(t, task.ID, *linked.TaskID)
	assert.Equal(t, 25, linked.Duration)
	assert.True(t, linked.Completed)

	unlinked, err := SavePomodoroSession(nil, 15, false)
	require.NoError(t, err)
	assert.Nil(t, unlinked.TaskID)
	assert.False(t, unlinked.Completed)
}

func TestCountSessionsTodayCountsCompletedOnly(t *testing.T) {
	setupTestDB(t)

	_, err := SavePomodoroSession(nil, 25, true)
	require.NoError(t, err)
	_, err = SavePomodoroSession(nil, 25, true)
	require.NoError(t, err)
	_, err = SavePomodoroSession(nil, 25, false) // abandoned
	require.NoError(t, err)

	count, err := CountSessionsToday()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSessionSurvivesTaskDeletion(t *testing.T) {
	setupTestDB(t)

	task, err := CreateTask(CreateTaskRequest{Title: "doomed"})
	require.NoError(t, err)
	_, err = SavePomodoroSession(&task.ID, 25, true)
	require.NoError(t, err)

	require.NoError(t, DeleteTask(task.ID))

	count, err := CountSessionsToday()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
