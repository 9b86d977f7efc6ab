package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

func boardWith(t *testing.T, tasks ...models.Task) BoardModel {
	t.Helper()
	updated, _ := NewBoardModel().Update(tasksLoadedMsg{tasks: tasks})
	model, ok := updated.(BoardModel)
	require.True(t, ok)
	return model
}

func pressBoardKey(t *testing.T, m BoardModel, key string) (BoardModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	model, ok := updated.(BoardModel)
	require.True(t, ok)
	return model, cmd
}

func TestBoardGroupsTasksByStatus(t *testing.T) {
	m := boardWith(t,
		models.Task{ID: 1, Title: "a", Status: models.StatusTodo},
		models.Task{ID: 2, Title: "b", Status: models.StatusInProgress},
		models.Task{ID: 3, Title: "c", Status: models.StatusTodo},
	)

	assert.Len(t, m.columns[models.StatusTodo], 2)
	assert.Len(t, m.columns[models.StatusInProgress], 1)
	assert.Empty(t, m.columns[models.StatusDone])
}

func TestBoardNavigationClampsSelection(t *testing.T) {
	m := boardWith(t,
		models.Task{ID: 1, Title: "a", Status: models.StatusTodo},
		models.Task{ID: 2, Title: "b", Status: models.StatusTodo},
		models.Task{ID: 3, Title: "c", Status: models.StatusInProgress},
	)

	m, _ = pressBoardKey(t, m, "j")
	assert.Equal(t, 1, m.selectedRow)

	// Row clamps when switching to a shorter column.
	m, _ = pressBoardKey(t, m, "l")
	assert.Equal(t, 1, m.selectedColumn)
	assert.Equal(t, 0, m.selectedRow)

	// Walking past the last column stays put.
	m, _ = pressBoardKey(t, m, "l")
	m, _ = pressBoardKey(t, m, "l")
	assert.Equal(t, 2, m.selectedColumn)
}

func TestBoardTabWrapsAroundColumns(t *testing.T) {
	m := boardWith(t,
		models.Task{ID: 1, Title: "a", Status: models.StatusTodo},
	)

	for i := 0; i < len(boardColumns); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(BoardModel)
	}
	assert.Equal(t, 0, m.selectedColumn)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(BoardModel)
	assert.Equal(t, len(boardColumns)-1, m.selectedColumn)
}

func TestBoardMoveShiftsTaskOptimistically(t *testing.T) {
	m := boardWith(t,
		models.Task{ID: 1, Title: "a", Status: models.StatusTodo},
	)

	m, cmd := pressBoardKey(t, m, "L")

	// The mirror reflects the move before the write lands.
	assert.Empty(t, m.columns[models.StatusTodo])
	require.Len(t, m.columns[models.StatusInProgress], 1)
	assert.Equal(t, uint(1), m.columns[models.StatusInProgress][0].ID)
	assert.Equal(t, 1, m.selectedColumn)
	assert.NotNil(t, cmd, "the move must schedule a persist")
}

func TestBoardMoveOnEmptyColumnIsNoOp(t *testing.T) {
	m := boardWith(t)

	m, cmd := pressBoardKey(t, m, "L")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.selectedColumn)
}

func TestBoardMovePastEdgeIsNoOp(t *testing.T) {
	m := boardWith(t,
		models.Task{ID: 1, Title: "a", Status: models.StatusTodo},
	)

	m, cmd := pressBoardKey(t, m, "H")
	assert.Nil(t, cmd)
	require.Len(t, m.columns[models.StatusTodo], 1)
}

func TestBoardLoadErrorIsSurfaced(t *testing.T) {
	updated, _ := NewBoardModel().Update(tasksLoadedMsg{err: assert.AnError})
	m, ok := updated.(BoardModel)
	require.True(t, ok)
	assert.Error(t, m.err)
}
