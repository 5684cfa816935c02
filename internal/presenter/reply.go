// Package presenter turns lookup results into transport-agnostic chat replies.
package presenter

import (
	"fmt"
	"strings"
)

// Card describes a single exactly matched record.
type Card struct {
	Code           string
	OfficialName   string
	ArticleNumber  string
	ElaboratedName string // empty unless orderable
	Orderable      bool
	Availability   string
}

// Item is a selectable suggestion. Query is what gets re-submitted on selection.
type Item struct {
	Code  string
	Name  string
	Query string
}

// Reply is the assistant's answer to one query.
type Reply struct {
	Text   []string
	Card   *Card
	Items  []Item
	Notice string
	Hints  []string
	Footer string
}

// PlainText renders the reply for terminals and logs. Items are numbered from 1.
func (r Reply) PlainText() string {
	var b strings.Builder
	for _, p := range r.Text {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if c := r.Card; c != nil {
		fmt.Fprintf(&b, "Код: %s\n", c.Code)
		fmt.Fprintf(&b, "%s\n", c.OfficialName)
		if c.Orderable {
			fmt.Fprintf(&b, "Артикул: %s\n", c.ArticleNumber)
			if c.ElaboratedName != "" {
				fmt.Fprintf(&b, "Наименование: %s\n", c.ElaboratedName)
			}
		}
		b.WriteString(c.Availability)
		b.WriteByte('\n')
	}
	for i, it := range r.Items {
		fmt.Fprintf(&b, "  %d) %s  %s\n", i+1, it.Code, it.Name)
	}
	if r.Notice != "" {
		b.WriteString(r.Notice)
		b.WriteByte('\n')
	}
	for _, h := range r.Hints {
		fmt.Fprintf(&b, "  • %s\n", h)
	}
	if r.Footer != "" {
		b.WriteString(r.Footer)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
