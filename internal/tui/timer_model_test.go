package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressKey(t *testing.T, m TimerModel, key string) (TimerModel, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	if key == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, cmd := m.Update(msg)
	model, ok := updated.(TimerModel)
	require.True(t, ok)
	return model, cmd
}

func tick(t *testing.T, m TimerModel, serial int) TimerModel {
	t.Helper()
	updated, _ := m.Update(timerTickMsg{serial: serial})
	model, ok := updated.(TimerModel)
	require.True(t, ok)
	return model
}

func newTestTimer(workMinutes int) TimerModel {
	m := NewTimerModel(workMinutes, nil, 0)
	m.saveSession = func() error { return nil }
	return m
}

func TestTimerStartsIdleAtFullDuration(t *testing.T) {
	m := newTestTimer(25)

	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, 25*60, m.remaining)
}

func TestTimerStartBeginsCountdown(t *testing.T) {
	m := newTestTimer(25)

	m, cmd := pressKey(t, m, "s")
	assert.Equal(t, StateRunning, m.state)
	assert.NotNil(t, cmd)

	m = tick(t, m, m.tickSerial)
	assert.Equal(t, 25*60-1, m.remaining)
}

func TestTimerDoubleStartIsNoOp(t *testing.T) {
	m := newTestTimer(25)

	m, _ = pressKey(t, m, "s")
	serial := m.tickSerial

	// A second start must not schedule a second tick chain.
	m, cmd := pressKey(t, m, "s")
	assert.Equal(t, StateRunning, m.state)
	assert.Equal(t, serial, m.tickSerial)
	assert.Nil(t, cmd)

	m = tick(t, m, serial)
	assert.Equal(t, 25*60-1, m.remaining)
}

func TestTimerPauseInvalidatesPendingTick(t *testing.T) {
	m := newTestTimer(25)

	m, _ = pressKey(t, m, "s")
	staleSerial := m.tickSerial

	m, _ = pressKey(t, m, "p")
	assert.Equal(t, StatePaused, m.state)

	// The tick scheduled before the pause arrives late and is dropped.
	m = tick(t, m, staleSerial)
	assert.Equal(t, 25*60, m.remaining)
}

func TestTimerResumeAfterPause(t *testing.T) {
	m := newTestTimer(25)

	m, _ = pressKey(t, m, "s")
	m = tick(t, m, m.tickSerial)
	m, _ = pressKey(t, m, "p")

	m, _ = pressKey(t, m, " ")
	assert.Equal(t, StateRunning, m.state)
	assert.Equal(t, 25*60-1, m.remaining)
}

func TestTimerResetRestoresWorkDuration(t *testing.T) {
	m := newTestTimer(25)

	m, _ = pressKey(t, m, "s")
	m = tick(t, m, m.tickSerial)
	m = tick(t, m, m.tickSerial)

	m, _ = pressKey(t, m, "r")
	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, 25*60, m.remaining)
}

func TestTimerCompletionSavesSessionOnce(t *testing.T) {
	m := newTestTimer(25)

	saves := 0
	m.saveSession = func() error {
		saves++
		return nil
	}

	m, _ = pressKey(t, m, "s")
	m.remaining = 1
	serial := m.tickSerial

	m = tick(t, m, serial)

	assert.Equal(t, 1, saves)
	assert.EqualValues(t, 1, m.sessionsToday)
	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, 25*60, m.remaining)
	assert.True(t, m.justFinished)

	// A leftover tick after completion must not fire a second save.
	m = tick(t, m, serial)
	assert.Equal(t, 1, saves)
	assert.EqualValues(t, 1, m.sessionsToday)
}

func TestTimerCompletionSaveFailureKeepsCounter(t *testing.T) {
	m := newTestTimer(25)

	m.saveSession = func() error { return errors.New("disk full") }

	m, _ = pressKey(t, m, "s")
	m.remaining = 1

	m = tick(t, m, m.tickSerial)

	assert.Zero(t, m.sessionsToday)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "disk full")
}

func TestTimerStartClearsFinishedBanner(t *testing.T) {
	m := newTestTimer(25)

	m, _ = pressKey(t, m, "s")
	m.remaining = 1
	m = tick(t, m, m.tickSerial)
	require.True(t, m.justFinished)

	m, _ = pressKey(t, m, "s")
	assert.False(t, m.justFinished)
}
