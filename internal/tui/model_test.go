package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/catalookup/internal/presenter"
)

// --- Fake assistant ---

type fakeAssistant struct {
	queries []string
}

func (f *fakeAssistant) answer(raw string) presenter.Reply {
	f.queries = append(f.queries, raw)
	if raw == "1" {
		return presenter.Reply{
			Text: []string{"Похожие позиции:"},
			Items: []presenter.Item{
				{Code: "1.1", Name: "Насос", Query: "1.1"},
				{Code: "1.2", Name: "Клапан", Query: "1.2"},
			},
		}
	}
	return presenter.Reply{Text: []string{"Ответ на " + raw}}
}

func newTestModel(f *fakeAssistant, delay time.Duration) Model {
	m := NewModel(f.answer, delay, presenter.Reply{Text: []string{"Здравствуйте!"}})
	m.width = 80
	m.height = 40
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return res.(Model)
}

// press sends a key and runs the resulting command to completion when it is an answer.
func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	res, cmd := m.Update(tea.KeyMsg{Type: k})
	m = res.(Model)
	if cmd == nil {
		return m
	}
	if msg, ok := cmd().(answerMsg); ok {
		res, _ = m.Update(msg)
		m = res.(Model)
	}
	return m
}

// --- Tests ---

func TestNewModel_Greeting(t *testing.T) {
	m := newTestModel(&fakeAssistant{}, 0)
	require.Len(t, m.history, 1)
	assert.Equal(t, roleBot, m.history[0].role)
	assert.Contains(t, m.View(), "Здравствуйте!")
	assert.NotNil(t, m.Init())
}

func TestSubmit_QueriesAndRecordsHistory(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, 0)

	m = typeText(t, m, "  насос ")
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, []string{"насос"}, f.queries)
	require.Len(t, m.history, 3)
	assert.Equal(t, roleUser, m.history[1].role)
	assert.Equal(t, "насос", m.history[1].text)
	assert.False(t, m.pending)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Ответ на насос")
}

func TestSubmit_EmptyInputIgnored(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, 0)

	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyEnter)

	assert.Empty(t, f.queries)
	assert.Len(t, m.history, 1)
}

func TestTypingDelay_DefersAnswer(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, DefaultTypingDelay)

	m = typeText(t, m, "1.2")
	res, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = res.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.pending)
	assert.Empty(t, f.queries, "answer must wait for the typing delay")
	assert.Contains(t, m.View(), "печатает")

	// Submitting again while pending is a no-op.
	res, cmd2 := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = res.(Model)
	assert.Nil(t, cmd2)

	res, _ = m.Update(answerMsg{id: m.pendingID, raw: "1.2"})
	m = res.(Model)
	assert.False(t, m.pending)
	assert.Equal(t, []string{"1.2"}, f.queries)
}

func TestAnswer_StaleIgnored(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, time.Second)

	m = typeText(t, m, "1.2")
	res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = res.(Model)

	res, _ = m.Update(answerMsg{id: m.pendingID + 7, raw: "x"})
	m = res.(Model)
	assert.True(t, m.pending)
	assert.Empty(t, f.queries)
}

func TestSelection_ArrowKeysResubmitCode(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, 0)

	m = typeText(t, m, "1")
	m = press(t, m, tea.KeyEnter)
	require.Len(t, m.items, 2)
	assert.Equal(t, -1, m.selection)

	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyDown) // clamps at the last item
	assert.Equal(t, 1, m.selection)
	m = press(t, m, tea.KeyUp)
	assert.Equal(t, 0, m.selection)

	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, []string{"1", "1.1"}, f.queries)
	assert.Empty(t, m.items)
}

func TestSelection_HashReference(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, 0)

	m = typeText(t, m, "1")
	m = press(t, m, tea.KeyEnter)

	m = typeText(t, m, "#2")
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, []string{"1", "1.2"}, f.queries)

	// Out-of-range references are sent verbatim.
	m = typeText(t, m, "#9")
	_ = press(t, m, tea.KeyEnter)
	assert.Equal(t, "#9", f.queries[2])
}

func TestUpWithoutSelectionPicksLast(t *testing.T) {
	f := &fakeAssistant{}
	m := newTestModel(f, 0)

	m = typeText(t, m, "1")
	m = press(t, m, tea.KeyEnter)
	m = press(t, m, tea.KeyUp)
	assert.Equal(t, 1, m.selection)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(&fakeAssistant{}, 0)
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(&fakeAssistant{}, 0)
	res, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	m = res.(Model)
	assert.Equal(t, 100, m.width)
	assert.LessOrEqual(t, len(strings.Split(m.View(), "\n")), 5)
}

func TestView_RendersCardAndItems(t *testing.T) {
	m := newTestModel(&fakeAssistant{}, 0)
	m.history = append(m.history, entry{role: roleBot, reply: presenter.Reply{
		Card: &presenter.Card{
			Code: "1.2.5", OfficialName: "Клапан", ArticleNumber: "ART-5",
			Orderable: true, Availability: "доступен",
		},
		Items:  []presenter.Item{{Code: "1.2.6", Name: "Затвор", Query: "1.2.6"}},
		Notice: "Показано 1 из 2 результатов.",
		Hints:  []string{"Уточните код"},
		Footer: "Могу ли я помочь?",
	}})

	v := m.View()
	for _, want := range []string{"Код: 1.2.5", "Артикул: ART-5", "[1]", "Затвор", "Показано 1 из 2", "• Уточните код", "Могу ли я помочь?"} {
		assert.Contains(t, v, want)
	}
}

func TestTail(t *testing.T) {
	assert.Equal(t, "b\nc", tail("a\nb\nc\n", 2))
	assert.Equal(t, "a", tail("a", 5))
	assert.Equal(t, "", tail("a\nb", 0))
}
