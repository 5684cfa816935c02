package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kailas-cloud/catalookup/internal/presenter"
)

var (
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	codeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	for i, e := range m.history {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch e.role {
		case roleUser:
			b.WriteString(userStyle.Render("Вы: " + e.text))
		case roleBot:
			b.WriteString(m.renderReply(e.reply, i == len(m.history)-1))
		}
		b.WriteByte('\n')
	}

	if m.pending {
		b.WriteString(dimStyle.Render(m.spinner.View() + " консультант печатает"))
		b.WriteByte('\n')
	}

	body := b.String()
	if m.height > 0 {
		body = tail(body, m.height-3)
	}
	return body + "\n" + m.input.View() + "\n" + dimStyle.Render("↑↓ выбор • #N позиция • Esc выход")
}

// renderReply draws a reply; live marks the latest one, whose items are selectable.
func (m Model) renderReply(r presenter.Reply, live bool) string {
	var lines []string
	for _, t := range r.Text {
		lines = append(lines, botStyle.Render(t))
	}
	if c := r.Card; c != nil {
		lines = append(lines, cardStyle.Render(renderCard(c)))
	}
	for i, it := range r.Items {
		line := fmt.Sprintf("[%d] %s  %s", i+1, codeStyle.Render(it.Code), it.Name)
		if live && i == m.selection {
			line = selectedStyle.Render(fmt.Sprintf("[%d] %s  %s", i+1, it.Code, it.Name))
		}
		lines = append(lines, "  "+line)
	}
	if r.Notice != "" {
		lines = append(lines, dimStyle.Render(r.Notice))
	}
	for _, h := range r.Hints {
		lines = append(lines, botStyle.Render("  • "+h))
	}
	if r.Footer != "" {
		lines = append(lines, botStyle.Render(r.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderCard(c *presenter.Card) string {
	rows := []string{
		codeStyle.Render("Код: " + c.Code),
		c.OfficialName,
	}
	if c.Orderable {
		rows = append(rows, "Артикул: "+c.ArticleNumber)
		if c.ElaboratedName != "" {
			rows = append(rows, "Наименование: "+c.ElaboratedName)
		}
	}
	rows = append(rows, c.Availability)
	return strings.Join(rows, "\n")
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
