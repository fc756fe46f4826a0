// Package tui implements the interactive day view.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/usecase"
)

type refreshedMsg struct {
	failed int
	err    error
}

type mutatedMsg struct {
	err error
}

// Model is the bubbletea model for the day view.
type Model struct {
	container *app.Container

	date   domain.Date
	tasks  []domain.Task
	cursor int

	help    help.Model
	width   int
	height  int
	loading bool
	errMsg  string
}

// NewModel creates the day view pinned to today.
func NewModel(c *app.Container) *Model {
	return &Model{
		container: c,
		date:      domain.DateOf(c.Clock.Now()),
		help:      help.New(),
		loading:   true,
	}
}

// Init kicks off the first fetch.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else if msg.failed > 0 {
			m.errMsg = fmt.Sprintf("%d source(s) unreachable", msg.failed)
		}
		m.reload()
		return m, nil

	case mutatedMsg:
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.PrevDay):
		m.date = m.date.AddDays(-1)
		m.reload()

	case key.Matches(msg, keys.NextDay):
		m.date = m.date.AddDays(1)
		m.reload()

	case key.Matches(msg, keys.Today):
		m.date = domain.DateOf(m.container.Clock.Now())
		m.reload()

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Refresh):
		m.loading = true
		return m, m.refreshCmd()

	case key.Matches(msg, keys.Complete):
		if t, ok := m.selected(); ok {
			return m, m.toggleCompleteCmd(t.ID)
		}

	case key.Matches(msg, keys.Skip):
		if t, ok := m.selected(); ok {
			return m, m.skipCmd(t.ID)
		}

	case key.Matches(msg, keys.Delete):
		if t, ok := m.selected(); ok {
			return m, m.deleteCmd(t.ID)
		}

	case key.Matches(msg, keys.Dup):
		if t, ok := m.selected(); ok {
			return m, m.duplicateCmd(t.ID)
		}
	}
	return m, nil
}

func (m *Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// reload rebuilds the visible task list from the timeline, timed slots
// first in start order, untimed todos last.
func (m *Model) reload() {
	tasks := m.container.Timeline.Day(m.date)
	sort.SliceStable(tasks, func(i, j int) bool {
		ti, tj := tasks[i], tasks[j]
		if ti.HasTimeExtent() != tj.HasTimeExtent() {
			return ti.HasTimeExtent()
		}
		return ti.StartMinutes() < tj.StartMinutes()
	})
	m.tasks = tasks
	if m.cursor >= len(tasks) {
		m.cursor = len(tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AggregateTasksUseCase().Execute(context.Background(), usecase.AggregateInput{
			UserID: m.container.Config.Remote.UserID,
		})
		if err != nil {
			return refreshedMsg{err: err}
		}
		return refreshedMsg{failed: out.FailedSources}
	}
}

func (m *Model) toggleCompleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ToggleCompleteUseCase().Execute(context.Background(), usecase.ToggleCompleteInput{
			UserID: m.container.Config.Remote.UserID,
			TaskID: id,
		})
		return mutatedMsg{err: err}
	}
}

func (m *Model) skipCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.SkipTaskUseCase().Execute(context.Background(), usecase.SkipTaskInput{
			UserID: m.container.Config.Remote.UserID,
			TaskID: id,
		})
		return mutatedMsg{err: err}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			UserID: m.container.Config.Remote.UserID,
			TaskID: id,
		})
		return mutatedMsg{err: err}
	}
}

func (m *Model) duplicateCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DuplicateTaskUseCase().Execute(context.Background(), usecase.DuplicateTaskInput{
			UserID: m.container.Config.Remote.UserID,
			TaskID: id,
		})
		return mutatedMsg{err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("focus  %s", m.date)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  Loading…\n")
	case len(m.tasks) == 0:
		b.WriteString("  Nothing scheduled\n")
	default:
		b.WriteString(m.renderTasks())
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.help.View(keys)))
	return b.String()
}

// renderTasks draws the list with overlap columns indented so parallel
// slots read side by side.
func (m *Model) renderTasks() string {
	layouts := domain.LayoutDay(m.tasks)
	byID := make(map[string]domain.TaskLayout, len(layouts))
	for _, l := range layouts {
		byID[l.TaskID] = l
	}

	now := m.container.Clock.Now()
	var b strings.Builder
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		slot := "--:--      "
		if t.HasTimeExtent() {
			slot = fmt.Sprintf("%02d:%02d-%02d:%02d", t.StartHour, t.StartMinute, t.EndHour, t.EndMinute)
		}
		slotStr := timeStyle.Render(slot)
		if t.HasTimeExtent() && t.IsNow(now) {
			slotStr = nowStyle.Render(slot)
		}

		indent := ""
		if l, ok := byID[t.ID]; ok {
			indent = strings.Repeat("  ", l.Column)
			if l.TotalColumns > 1 {
				indent += timeStyle.Render(fmt.Sprintf("[%d/%d] ", l.Column+1, l.TotalColumns))
			}
		}

		title := t.Title
		switch {
		case t.IsCompleted:
			title = doneStyle.Render(title)
		case t.IsSkipped:
			title = skippedStyle.Render(title + " (skipped)")
		case i == m.cursor:
			title = selectedStyle.Render(title)
		}

		fmt.Fprintf(&b, "%s%s  %s%s\n", cursor, slotStr, indent, title)
	}
	return b.String()
}
