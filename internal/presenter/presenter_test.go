package presenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
)

func records(n int, prefix string) []catalog.Record {
	out := make([]catalog.Record, n)
	for i := range out {
		out[i] = catalog.NewRecord(fmt.Sprintf("%s.%d", prefix, i+1), fmt.Sprintf("Позиция %d", i+1), "", "")
	}
	return out
}

func TestRender_ExactOrderable(t *testing.T) {
	rec := catalog.NewRecord("1.2.5", "Клапан", "Клапан запорный", "ART-5")
	r := New("shop.example").Render(result.Exact(rec), true)

	if r.Card == nil {
		t.Fatal("expected card")
	}
	c := r.Card
	if c.Code != "1.2.5" || c.OfficialName != "Клапан" || c.ArticleNumber != "ART-5" || c.ElaboratedName != "Клапан запорный" {
		t.Errorf("card = %+v", c)
	}
	if !c.Orderable {
		t.Error("expected orderable")
	}
	if !strings.Contains(c.Availability, "shop.example") || !strings.Contains(c.Availability, "ART-5") {
		t.Errorf("availability = %q", c.Availability)
	}
	if len(r.Items) != 0 || r.Footer == "" {
		t.Errorf("unexpected reply shape: %+v", r)
	}
}

func TestRender_ExactNotOrderableHidesDetails(t *testing.T) {
	rec := catalog.NewRecord("1.2", "Насос", "Насос центробежный", "   ")
	r := New("").Render(result.Exact(rec), true)

	c := r.Card
	if c == nil {
		t.Fatal("expected card")
	}
	if c.Orderable || c.ArticleNumber != "" || c.ElaboratedName != "" {
		t.Errorf("non-orderable card leaks details: %+v", c)
	}
	if !strings.Contains(c.Availability, "нет соответствующей позиции") {
		t.Errorf("availability = %q", c.Availability)
	}
}

func TestRender_DefaultShop(t *testing.T) {
	rec := catalog.NewRecord("1", "X", "", "A")
	r := New("").Render(result.Exact(rec), true)
	if !strings.Contains(r.Card.Availability, DefaultShop) {
		t.Errorf("availability = %q", r.Card.Availability)
	}
}

func TestRender_Lists(t *testing.T) {
	p := New("")

	tests := []struct {
		name       string
		res        result.Result
		wantItems  int
		wantNotice string
	}{
		{"partial", result.Partial("1", records(3, "1")), 3, ""},
		{"partial truncated", result.Partial("1", records(14, "1")), 10, "Показано 10 из 14 результатов. Уточните код"},
		{"similar truncated", result.Similar("1.9", "1", records(12, "1")), 10, "Показано 10 из 12 результатов."},
		{"text", result.Text("позиция", records(5, "2")), 5, ""},
		{"text truncated", result.Text("позиция", records(20, "2")), 15, "Показано 15 из 20 результатов. Уточните запрос"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := p.Render(tc.res, true)
			if len(r.Items) != tc.wantItems {
				t.Fatalf("items = %d, want %d", len(r.Items), tc.wantItems)
			}
			for _, it := range r.Items {
				if it.Query != it.Code {
					t.Errorf("item query %q must re-submit its code %q", it.Query, it.Code)
				}
			}
			if tc.wantNotice == "" && r.Notice != "" {
				t.Errorf("unexpected notice %q", r.Notice)
			}
			if tc.wantNotice != "" && !strings.HasPrefix(r.Notice, tc.wantNotice) {
				t.Errorf("notice = %q, want prefix %q", r.Notice, tc.wantNotice)
			}
			if r.Card != nil {
				t.Error("list reply must not carry a card")
			}
		})
	}
}

func TestRender_Guidance(t *testing.T) {
	p := New("")

	tests := []struct {
		name     string
		res      result.Result
		wantText string
		hints    int
	}{
		{"no code", result.NoCode("9.9"), "По коду 9.9 не найдено", 3},
		{"no text", result.NoText("турбина"), "«турбина» ничего не найдено", 3},
		{"vague", result.Vague("ab"), "опишите более подробно", 3},
		{"empty", result.Empty(), "Введите код позиции", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := p.Render(tc.res, true)
			if len(r.Text) == 0 || !strings.Contains(strings.Join(r.Text, " "), tc.wantText) {
				t.Errorf("text = %v, want containing %q", r.Text, tc.wantText)
			}
			if len(r.Hints) != tc.hints {
				t.Errorf("hints = %d, want %d", len(r.Hints), tc.hints)
			}
			if len(r.Items) != 0 {
				t.Error("guidance replies carry no items")
			}
		})
	}
}

func TestRender_CatalogUnavailable(t *testing.T) {
	p := New("")

	r := p.Render(result.NoCode("1.2"), false)
	if !strings.Contains(strings.Join(r.Text, " "), "ошибка при загрузке") {
		t.Errorf("expected unavailable reply, got %v", r.Text)
	}

	// Empty input is answered normally even without a catalog.
	r = p.Render(result.Empty(), false)
	if !strings.Contains(strings.Join(r.Text, " "), "Введите код") {
		t.Errorf("expected empty-query prompt, got %v", r.Text)
	}
}

func TestPlainText(t *testing.T) {
	p := New("")

	txt := p.Render(result.Partial("1", records(2, "1")), true).PlainText()
	for _, want := range []string{"точного совпадения не найдено", "1) 1.1  Позиция 1", "2) 1.2  Позиция 2"} {
		if !strings.Contains(txt, want) {
			t.Errorf("plain text missing %q:\n%s", want, txt)
		}
	}

	card := p.Render(result.Exact(catalog.NewRecord("1.2.5", "Клапан", "Запорный", "ART-5")), true).PlainText()
	for _, want := range []string{"Код: 1.2.5", "Артикул: ART-5", "Наименование: Запорный", "vdm.ru"} {
		if !strings.Contains(card, want) {
			t.Errorf("card text missing %q:\n%s", want, card)
		}
	}
	if strings.HasSuffix(card, "\n") {
		t.Error("plain text must not end with a newline")
	}

	hints := p.Render(result.NoCode("9"), true).PlainText()
	if !strings.Contains(hints, "• Проверьте правильность") {
		t.Errorf("hints not rendered:\n%s", hints)
	}
}

func TestGreeting(t *testing.T) {
	if g := Greeting(true); len(g.Text) != 2 || !strings.Contains(g.Text[0], "Здравствуйте") {
		t.Errorf("greeting = %v", g.Text)
	}
	if g := Greeting(false); !strings.Contains(strings.Join(g.Text, " "), "ошибка при загрузке") {
		t.Errorf("degraded greeting = %v", g.Text)
	}
}
