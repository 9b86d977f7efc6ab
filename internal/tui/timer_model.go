package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

// TimerState is the pomodoro countdown state.
type TimerState int

const (
	StateIdle TimerState = iota
	StateRunning
	StatePaused
)

// TimerModel is the pomodoro countdown TUI. It is the only long-lived
// stateful process in the system: a one-second cooperative tick that
// must be cancellable at any point without leaking ticks.
type TimerModel struct {
	width  int
	height int

	workMinutes int
	task        *models.Task

	// Timer state
	state      TimerState
	remaining  int // seconds
	tickSerial int // bumped on every pause/reset so stale ticks are dropped

	// Bookkeeping
	sessionsToday int64
	justFinished  bool
	err           error

	bar progress.Model

	// saveSession persists a finished interval; swapped out in tests.
	saveSession func() error
}

// timerTickMsg carries the serial it was scheduled under. A tick whose
// serial no longer matches the model's is a leftover from a cancelled
// countdown and is ignored.
type timerTickMsg struct {
	serial int
}

// NewTimerModel creates a timer initialized to the configured work
// duration. Break duration is configured elsewhere but never drives an
// automatic transition.
func NewTimerModel(workMinutes int, task *models.Task, sessionsToday int64) TimerModel {
	bar := progress.New(progress.WithGradient(ColorAccentMain, ColorAccentBright))

	m := TimerModel{
		workMinutes:   workMinutes,
		task:          task,
		state:         StateIdle,
		remaining:     workMinutes * 60,
		sessionsToday: sessionsToday,
		bar:           bar,
	}
	m.saveSession = func() error {
		var taskID *uint
		if m.task != nil {
			taskID = &m.task.ID
		}
		_, err := db.SavePomodoroSession(taskID, m.workMinutes, true)
		return err
	}
	return m
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return nil
}

func (m TimerModel) tickCmd() tea.Cmd {
	serial := m.tickSerial
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{serial: serial}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.serial != m.tickSerial || m.state != StateRunning {
			return m, nil
		}

		m.remaining--
		if m.remaining > 0 {
			return m, m.tickCmd()
		}
		return m.complete()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(m.width-8, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S", " ":
			// Starting an already-running timer is a no-op.
			if m.state == StateRunning {
				return m, nil
			}
			m.state = StateRunning
			m.justFinished = false
			m.tickSerial++
			return m, m.tickCmd()

		case "p", "P":
			if m.state == StateRunning {
				m.state = StatePaused
				m.tickSerial++
			}
			return m, nil

		case "r", "R":
			return m.reset(), nil

		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// reset cancels any countdown and restores the configured work duration.
func (m TimerModel) reset() TimerModel {
	m.state = StateIdle
	m.remaining = m.workMinutes * 60
	m.tickSerial++
	m.justFinished = false
	return m
}

// complete persists the finished session and returns the timer to an
// Idle-equivalent state.
func (m TimerModel) complete() (tea.Model, tea.Cmd) {
	if err := m.saveSession(); err != nil {
		m.err = err
	} else {
		m.sessionsToday++
	}

	m = m.reset()
	m.justFinished = true
	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	headerText := "POMODORO"
	switch m.state {
	case StateRunning:
		headerText = "FOCUS"
	case StatePaused:
		headerText = "PAUSED"
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	if m.task != nil {
		taskStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, taskStyle.Render(fmt.Sprintf("#%d %s", m.task.ID, m.task.Title)))
	}

	components = append(components, m.renderBigClock())

	elapsed := m.workMinutes*60 - m.remaining
	components = append(components, lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.bar.ViewAs(float64(elapsed)/float64(m.workMinutes*60))))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, infoStyle.Render(fmt.Sprintf("%d session(s) completed today", m.sessionsToday)))

	if m.justFinished {
		doneStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, doneStyle.Render("Session complete! Take a break."))
	}
	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, errStyle.Render("Failed to save session: "+m.err.Error()))
	}

	content := strings.Join(components, "\n\n")

	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.renderHelpBar())
}

// renderBigClock renders the remaining time as ASCII art digits
func (m TimerModel) renderBigClock() string {
	minutes := m.remaining / 60
	seconds := m.remaining % 60
	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		digitArt, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(digitArt[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(lines[i].String())))
		if i < 4 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s start · p pause · r reset · q quit")
}

// clockDigits is the 5-row ASCII art used by the big clock display.
var clockDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// RunTimerTUI runs the pomodoro timer TUI. The work duration comes from
// the pomodoro_duration setting, falling back to the supplied default.
func RunTimerTUI(workMinutes int, task *models.Task) error {
	sessionsToday, err := db.CountSessionsToday()
	if err != nil {
		return fmt.Errorf("failed to count today's sessions: %w", err)
	}

	model := NewTimerModel(workMinutes, task, sessionsToday)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		fmt.Printf("Sessions completed today: %d\n", m.sessionsToday)
	}

	return nil
}
