package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskmasterhq/taskmaster/internal/db"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

// boardColumns fixes the kanban column order.
var boardColumns = []string{models.StatusTodo, models.StatusInProgress, models.StatusDone}

var boardColumnTitles = map[string]string{
	models.StatusTodo:       "TODO",
	models.StatusInProgress: "IN PROGRESS",
	models.StatusDone:       "DONE",
}

// BoardModel is the kanban view. It holds a transient, fully-replaceable
// mirror of the task collection: every mutation persists first, then the
// whole mirror is re-fetched. The one exception is a column move, which
// mutates the mirror optimistically before the refresh lands.
type BoardModel struct {
	width  int
	height int

	tasks   []models.Task
	columns map[string][]models.Task

	selectedColumn int
	selectedRow    int

	err error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type statusSavedMsg struct {
	err error
}

// NewBoardModel creates an empty board; Init triggers the first fetch.
func NewBoardModel() BoardModel {
	return BoardModel{columns: map[string][]models.Task{}}
}

// Init initializes the model
func (m BoardModel) Init() tea.Cmd {
	return loadTasksCmd
}

func loadTasksCmd() tea.Msg {
	tasks, err := db.GetTasks(db.TaskQueryOptions{})
	return tasksLoadedMsg{tasks: tasks, err: err}
}

func saveStatusCmd(id uint, status string) tea.Cmd {
	return func() tea.Msg {
		return statusSavedMsg{err: db.UpdateTaskStatus(id, status)}
	}
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setTasks(msg.tasks)
		m.clampSelection()
		return m, nil

	case statusSavedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		// Replace the mirror regardless; a failed patch must show the
		// real state again.
		return m, loadTasksCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "left", "h":
			if m.selectedColumn > 0 {
				m.selectedColumn--
				m.clampSelection()
			}
			return m, nil

		case "right", "l":
			if m.selectedColumn < len(boardColumns)-1 {
				m.selectedColumn++
				m.clampSelection()
			}
			return m, nil

		case "tab":
			m.selectedColumn = (m.selectedColumn + 1) % len(boardColumns)
			m.clampSelection()
			return m, nil

		case "shift+tab":
			m.selectedColumn = (m.selectedColumn + len(boardColumns) - 1) % len(boardColumns)
			m.clampSelection()
			return m, nil

		case "up", "k":
			if m.selectedRow > 0 {
				m.selectedRow--
			}
			return m, nil

		case "down", "j":
			if m.selectedRow < len(m.currentColumn())-1 {
				m.selectedRow++
			}
			return m, nil

		case "H", "shift+left":
			return m.moveSelected(-1)

		case "L", "shift+right":
			return m.moveSelected(1)

		case "R":
			return m, loadTasksCmd
		}
	}

	return m, nil
}

// setTasks rebuilds the per-column mirror.
func (m *BoardModel) setTasks(tasks []models.Task) {
	m.tasks = tasks
	m.columns = map[string][]models.Task{}
	for _, task := range tasks {
		m.columns[task.Status] = append(m.columns[task.Status], task)
	}
}

func (m BoardModel) currentColumn() []models.Task {
	return m.columns[boardColumns[m.selectedColumn]]
}

func (m *BoardModel) clampSelection() {
	if size := len(m.currentColumn()); m.selectedRow >= size {
		m.selectedRow = size - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// moveSelected shifts the selected task one column left or right,
// mutating the local mirror before the write lands.
func (m BoardModel) moveSelected(direction int) (tea.Model, tea.Cmd) {
	column := m.currentColumn()
	if len(column) == 0 {
		return m, nil
	}

	target := m.selectedColumn + direction
	if target < 0 || target >= len(boardColumns) {
		return m, nil
	}

	task := column[m.selectedRow]
	newStatus := boardColumns[target]

	// Optimistic move so the board doesn't flicker while the patch and
	// refresh round-trip run.
	for i := range m.tasks {
		if m.tasks[i].ID == task.ID {
			m.tasks[i].Status = newStatus
		}
	}
	m.setTasks(m.tasks)
	m.selectedColumn = target
	m.clampSelection()

	return m, saveStatusCmd(task.ID, newStatus)
}

// View renders the kanban board
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	columnWidth := m.width/len(boardColumns) - 2
	columnHeight := m.height - 4

	rendered := make([]string, 0, len(boardColumns))
	for i, status := range boardColumns {
		rendered = append(rendered, m.renderColumn(i, status, columnWidth, columnHeight))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	var footer string
	if m.err != nil {
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Width(m.width).
			Render("Error: " + m.err.Error())
	} else {
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Width(m.width).
			Render("←/→ column · ↑/↓ task · H/L move task · R refresh · q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, board, footer)
}

func (m BoardModel) renderColumn(index int, status string, width, height int) string {
	titleColor := ColorSecondaryText
	switch status {
	case models.StatusInProgress:
		titleColor = ColorWarning
	case models.StatusDone:
		titleColor = ColorSuccess
	}

	tasks := m.columns[status]
	title := fmt.Sprintf("%s (%d)", boardColumnTitles[status], len(tasks))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(titleColor)).
		Bold(true).
		Width(width - 4).
		Align(lipgloss.Center).
		Render(title))
	b.WriteString("\n\n")

	for row, task := range tasks {
		line := fmt.Sprintf("#%d %s", task.ID, task.Title)
		if len(line) > width-6 && width > 9 {
			line = line[:width-9] + "..."
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		if task.Priority == models.PriorityHigh {
			style = style.Foreground(lipgloss.Color(ColorError))
		}
		if index == m.selectedColumn && row == m.selectedRow {
			style = style.
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	borderColor := ColorBorder
	if index == m.selectedColumn {
		borderColor = ColorAccentMain
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(width).
		Height(height).
		Padding(0, 1).
		Render(b.String())
}

// RunBoardTUI runs the kanban board TUI.
func RunBoardTUI() error {
	p := tea.NewProgram(NewBoardModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
