// Package tui implements the interactive terminal chat with the catalog assistant.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kailas-cloud/catalookup/internal/presenter"
)

// DefaultTypingDelay is the cosmetic pause before the assistant answers.
const DefaultTypingDelay = 500 * time.Millisecond

// QueryFunc answers one raw query.
type QueryFunc func(raw string) presenter.Reply

type role int

const (
	roleUser role = iota
	roleBot
)

type entry struct {
	role  role
	text  string
	reply presenter.Reply
}

// answerMsg fires when the typing delay for query id has elapsed.
type answerMsg struct {
	id  uint64
	raw string
}

// Model is the Bubble Tea model for the chat.
type Model struct {
	input   textinput.Model
	spinner spinner.Model
	query   QueryFunc
	delay   time.Duration

	history []entry

	// items are the suggestions of the latest reply; selection indexes them, -1 when none.
	items     []presenter.Item
	selection int

	pending   bool
	pendingID uint64

	width  int
	height int
}

// NewModel creates a chat model. greeting, if non-empty, is shown as the first assistant message.
func NewModel(query QueryFunc, delay time.Duration, greeting presenter.Reply) Model {
	ti := textinput.New()
	ti.Placeholder = "Код (например, 1.2.5) или описание товара"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points

	if delay < 0 {
		delay = 0
	}

	m := Model{
		input:     ti,
		spinner:   sp,
		query:     query,
		delay:     delay,
		selection: -1,
	}
	if len(greeting.Text) > 0 || greeting.Card != nil || len(greeting.Items) > 0 {
		m.history = append(m.history, entry{role: roleBot, reply: greeting})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case answerMsg:
		return m.handleAnswer(msg)

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyUp:
		if len(m.items) > 0 && m.selection > 0 {
			m.selection--
		} else if len(m.items) > 0 && m.selection < 0 {
			m.selection = len(m.items) - 1
		}
		return m, nil

	case tea.KeyDown:
		if m.selection < len(m.items)-1 {
			m.selection++
		}
		return m, nil

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the typed text, a "#N" suggestion reference, or the highlighted suggestion.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	raw := strings.TrimSpace(m.input.Value())
	if raw == "" && m.selection >= 0 && m.selection < len(m.items) {
		raw = m.items[m.selection].Query
	}
	if item, ok := m.itemRef(raw); ok {
		raw = item.Query
	}
	if raw == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.history = append(m.history, entry{role: roleUser, text: raw})
	m.items = nil
	m.selection = -1
	m.pending = true
	m.pendingID++

	id := m.pendingID
	answer := func(time.Time) tea.Msg { return answerMsg{id: id, raw: raw} }
	if m.delay == 0 {
		return m, func() tea.Msg { return answer(time.Time{}) }
	}
	return m, tea.Batch(m.spinner.Tick, tea.Tick(m.delay, answer))
}

// itemRef resolves "#N" (1-based) against the current suggestions.
func (m Model) itemRef(raw string) (presenter.Item, bool) {
	ref, ok := strings.CutPrefix(raw, "#")
	if !ok {
		return presenter.Item{}, false
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(m.items) {
		return presenter.Item{}, false
	}
	return m.items[n-1], true
}

func (m Model) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	if !m.pending || msg.id != m.pendingID {
		return m, nil
	}
	reply := m.query(msg.raw)
	m.history = append(m.history, entry{role: roleBot, reply: reply})
	m.items = reply.Items
	m.selection = -1
	m.pending = false
	return m, nil
}
