package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/dotoo/internal/app"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/events"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/kanban"
)

// Model is the interactive kanban board. Cursor movement while a task is
// lifted moves the drop target.
type Model struct {
	ctx  context.Context
	app  *app.App
	keys keyMap
	help help.Model

	cols   []kanban.Column
	col    int
	row    int
	width  int
	notice string
	err    error

	eventChan <-chan events.Event
}

// refreshMsg carries a store change that should redraw the board
type refreshMsg struct {
	Event events.Event
}

// NewModel loads the filtered tasks of the active project into a board and
// subscribes to store changes until ctx is done
func NewModel(ctx context.Context, a *app.App) Model {
	m := Model{
		ctx:  ctx,
		app:  a,
		keys: newKeyMap(a.Config.KeyMappings),
		help: help.New(),
	}
	if pub := a.Events(); pub != nil {
		ch, err := pub.Listen(ctx)
		if err != nil {
			slog.Warn("board will not live refresh", "error", err)
		}
		m.eventChan = ch
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.subscribe()
}

// subscribe waits for the next store event. It returns nil when there is no
// subscription, and the command yields nil once the channel closes.
func (m Model) subscribe() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch, ctx := m.eventChan, m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return refreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// ============================================================================
// UPDATE
// ============================================================================

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshMsg:
		slog.Debug("board refresh", "event_type", msg.Event.Type, "sequence", msg.Event.SequenceID)
		selected := m.Selected()
		m.reload()
		m.focus(selected)
		return m, m.subscribe()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.app.Kanban.Cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Lift):
		m.lift()
	case key.Matches(msg, m.keys.Drop):
		m.drop()
	case key.Matches(msg, m.keys.Cancel):
		if m.app.Kanban.Lifted() != "" {
			m.app.Kanban.Cancel()
			m.notice = "Drag cancelled"
		}
	}
	return m, nil
}

func (m *Model) moveColumn(delta int) {
	next := m.col + delta
	if next < 0 || next >= len(m.cols) {
		return
	}
	m.col = next
	m.row = min(m.row, len(m.cols[m.col].Tasks)-1)
	m.row = max(m.row, 0)
	m.hover()
}

func (m *Model) moveRow(delta int) {
	if len(m.cols) == 0 {
		return
	}
	next := m.row + delta
	if next < 0 || next >= len(m.cols[m.col].Tasks) {
		return
	}
	m.row = next
	m.hover()
}

// hover points the drag target at the card under the cursor, or at the
// column when it is empty
func (m *Model) hover() {
	lifted := m.app.Kanban.Lifted()
	if lifted == "" {
		return
	}
	if t := m.current(); t != nil && t.ID != lifted {
		m.app.Kanban.DragOver(t.ID)
		return
	}
	m.app.Kanban.DragOver(m.cols[m.col].Key)
}

func (m *Model) lift() {
	t := m.current()
	if t == nil {
		return
	}
	m.app.Kanban.DragStart(t.ID)
	m.app.Kanban.DragOver(m.cols[m.col].Key)
	m.notice = fmt.Sprintf("Lifted %q", t.Title)
}

func (m *Model) drop() {
	lifted := m.app.Kanban.Lifted()
	if lifted == "" {
		return
	}
	outcome, err := m.app.Kanban.Drop(m.ctx, lifted, m.app.Kanban.Hovered())
	if err != nil {
		m.err = err
		return
	}
	m.reload()
	m.focus(lifted)
	if outcome.Applied {
		m.notice = "Moved to " + outcome.Status.Label()
	} else {
		m.notice = "Nothing changed"
	}
}

func (m *Model) reload() {
	m.cols = kanban.Board(m.app.TaskService.FilteredTasks())
	if m.col >= len(m.cols) {
		m.col = 0
	}
	if len(m.cols) > 0 && m.row >= len(m.cols[m.col].Tasks) {
		m.row = max(0, len(m.cols[m.col].Tasks)-1)
	}
}

// focus moves the cursor onto the task with id
func (m *Model) focus(id string) {
	for i, col := range m.cols {
		for j, t := range col.Tasks {
			if t.ID == id {
				m.col, m.row = i, j
				return
			}
		}
	}
}

// ============================================================================
// VIEW
// ============================================================================

// View implements tea.Model
func (m Model) View() string {
	cursor := render.BoardCursor{Column: m.col, Task: m.row}
	if len(m.cols) == 0 || len(m.cols[m.col].Tasks) == 0 {
		cursor.Task = -1
	}

	var b strings.Builder
	b.WriteString(render.Board(m.cols, render.BoardOptions{
		Width:       m.width,
		Now:         m.app.Now(),
		WarningDays: m.app.Config.Calendar.WarningDays,
		Cursor:      &cursor,
		Lifted:      m.app.Kanban.Lifted(),
		Hovered:     m.app.Kanban.Hovered(),
	}))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(styles.MutedStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) current() *models.Task {
	if m.col >= len(m.cols) || m.row >= len(m.cols[m.col].Tasks) {
		return nil
	}
	return m.cols[m.col].Tasks[m.row]
}

// Selected returns the id of the card under the cursor, or ""
func (m Model) Selected() string {
	if t := m.current(); t != nil {
		return t.ID
	}
	return ""
}
