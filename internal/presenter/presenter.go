package presenter

import (
	"fmt"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
)

// DefaultShop is the storefront named in availability lines.
const DefaultShop = "vdm.ru"

const (
	footerSelect = "Выберите интересующую позицию, чтобы увидеть подробную информацию."
	footerMore   = "Могу ли я помочь вам с чем-то ещё?"
	codeExample  = "1.2.5"
)

// Presenter renders results. It is stateless and safe for concurrent use.
type Presenter struct {
	shop string
}

// New creates a presenter naming shop in availability lines.
func New(shop string) *Presenter {
	if shop == "" {
		shop = DefaultShop
	}
	return &Presenter{shop: shop}
}

// Render builds the reply for res. catalogAvailable is false when the catalog
// failed to load; every non-empty query then gets the unavailable reply.
func (p *Presenter) Render(res result.Result, catalogAvailable bool) Reply {
	if !catalogAvailable && res.Kind() != kind.EmptyQuery {
		return Unavailable()
	}

	switch res.Kind() {
	case kind.ExactMatch:
		rec, _ := res.Record()
		return Reply{Card: p.card(rec), Footer: footerMore}
	case kind.PartialMatches:
		return Reply{
			Text: []string{
				fmt.Sprintf("По коду %s точного совпадения не найдено.", res.Query()),
				"Вот похожие позиции, которые начинаются с этого кода:",
			},
			Items:  items(res.Matches()),
			Notice: notice(res, "Уточните код для более точного поиска."),
			Footer: footerSelect,
		}
	case kind.SimilarCodes:
		return Reply{
			Text: []string{
				fmt.Sprintf("По коду %s точного совпадения не найдено.", res.Query()),
				"Возможно, вас заинтересуют эти позиции:",
			},
			Items:  items(res.Matches()),
			Notice: notice(res, ""),
			Footer: footerSelect,
		}
	case kind.NoCodeResults:
		return Reply{
			Text: []string{
				fmt.Sprintf("По коду %s не найдено совпадений в нашей базе данных.", res.Query()),
				"Пожалуйста:",
			},
			Hints: []string{
				"Проверьте правильность введённого кода",
				"Попробуйте ввести код из меньшего количества сегментов (например, 1.2 вместо 1.2.99)",
				"Опишите интересующий товар словами (назначение, характеристики)",
			},
		}
	case kind.TextMatches:
		return Reply{
			Text:   []string{fmt.Sprintf("По вашему запросу «%s» найдены следующие позиции:", res.Query())},
			Items:  items(res.Matches()),
			Notice: notice(res, "Уточните запрос для более точного поиска."),
			Footer: footerSelect,
		}
	case kind.NoTextResults:
		return Reply{
			Text: []string{
				fmt.Sprintf("К сожалению, по запросу «%s» ничего не найдено.", res.Query()),
				"Попробуйте:",
			},
			Hints: []string{
				"Использовать другие ключевые слова",
				fmt.Sprintf("Ввести код позиции из Приказа 1057 (например: %s)", codeExample),
				"Описать товар более общими словами",
			},
			Footer: "Я помогу вам найти нужную продукцию!",
		}
	case kind.VagueQuery:
		return Reply{
			Text: []string{"Пожалуйста, опишите более подробно, что вас интересует:"},
			Hints: []string{
				"Назначение товара",
				"Основные характеристики",
				"Область применения",
			},
			Footer: fmt.Sprintf("Или введите код позиции из Приказа 1057 (например: %s)", codeExample),
		}
	default:
		return Reply{
			Text: []string{fmt.Sprintf(
				"Введите код позиции из Приказа 1057 (например: %s) или опишите интересующий товар словами.",
				codeExample,
			)},
		}
	}
}

// Unavailable is the reply shown while the catalog could not be loaded.
func Unavailable() Reply {
	return Reply{
		Text: []string{
			"Извините, произошла ошибка при загрузке базы данных.",
			"Поиск временно недоступен, пожалуйста, попробуйте позже.",
		},
	}
}

func (p *Presenter) card(rec catalog.Record) *Card {
	c := &Card{
		Code:         rec.Code(),
		OfficialName: rec.OfficialName(),
		Orderable:    rec.Orderable(),
	}
	if !c.Orderable {
		c.Availability = "⚠️ К сожалению, в нашем каталоге пока нет соответствующей позиции. Мы работаем над этим."
		return c
	}
	c.ArticleNumber = rec.ArticleNumber()
	c.ElaboratedName = rec.ElaboratedName()
	c.Availability = fmt.Sprintf(
		"✅ Данный продукт доступен для заказа на нашем сайте %s по артикулу %s",
		p.shop, c.ArticleNumber,
	)
	return c
}

func items(recs []catalog.Record) []Item {
	out := make([]Item, len(recs))
	for i, r := range recs {
		out[i] = Item{Code: r.Code(), Name: r.OfficialName(), Query: r.Code()}
	}
	return out
}

func notice(res result.Result, advice string) string {
	if !res.Truncated() {
		return ""
	}
	n := fmt.Sprintf("Показано %d из %d результатов.", res.Shown(), res.TotalCount())
	if advice != "" {
		n += " " + advice
	}
	return n
}

// Greeting is the opening message of an interactive session.
func Greeting(catalogAvailable bool) Reply {
	if !catalogAvailable {
		return Unavailable()
	}
	return Reply{
		Text: []string{
			"Здравствуйте! Я консультант по продукции из Приказа 1057.",
			fmt.Sprintf("Введите код позиции (например: %s) или опишите интересующий товар словами.", codeExample),
		},
	}
}
