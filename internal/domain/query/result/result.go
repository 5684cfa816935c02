// Package result defines the typed outcome of a catalog query.
package result

import (
	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
)

// Truncation caps per tier.
const (
	CodeCap = 10
	TextCap = 15
)

// Result is a tagged variant: Kind decides which accessors are meaningful.
// Truncated variants never hold more than their cap; TotalCount is the
// untruncated size of the match list, so it is 0 for ExactMatch, which
// carries a record instead of a list.
type Result struct {
	kind       kind.Kind
	query      string
	baseCode   string
	record     catalog.Record
	hasRecord  bool
	matches    []catalog.Record
	totalCount int
	truncated  bool
}

// Exact builds an ExactMatch result.
func Exact(rec catalog.Record) Result {
	return Result{
		kind:      kind.ExactMatch,
		query:     rec.Code(),
		record:    rec,
		hasRecord: true,
	}
}

// Partial builds a PartialMatches result from all children of code.
func Partial(code string, all []catalog.Record) Result {
	r := capped(kind.PartialMatches, all, CodeCap)
	r.query = code
	return r
}

// Similar builds a SimilarCodes result for code widened to baseCode.
func Similar(code, baseCode string, all []catalog.Record) Result {
	r := capped(kind.SimilarCodes, all, CodeCap)
	r.query = code
	r.baseCode = baseCode
	return r
}

// Text builds a TextMatches result.
func Text(query string, all []catalog.Record) Result {
	r := capped(kind.TextMatches, all, TextCap)
	r.query = query
	return r
}

// NoCode builds a NoCodeResults result.
func NoCode(code string) Result {
	return Result{kind: kind.NoCodeResults, query: code}
}

// NoText builds a NoTextResults result.
func NoText(query string) Result {
	return Result{kind: kind.NoTextResults, query: query}
}

// Empty builds an EmptyQuery result.
func Empty() Result {
	return Result{kind: kind.EmptyQuery}
}

// Vague builds a VagueQuery result: text with no usable keyword.
func Vague(query string) Result {
	return Result{kind: kind.VagueQuery, query: query}
}

func capped(k kind.Kind, all []catalog.Record, limit int) Result {
	total := len(all)
	n := min(total, limit)
	matches := make([]catalog.Record, n)
	copy(matches, all[:n])
	return Result{
		kind:       k,
		matches:    matches,
		totalCount: total,
		truncated:  total > limit,
	}
}

// Kind returns the variant tag.
func (r Result) Kind() kind.Kind { return r.kind }

// Query returns the trimmed input the result answers: the searched code for
// code tiers, the text query for text variants, "" for EmptyQuery.
func (r Result) Query() string { return r.query }

// BaseCode returns the widened ancestor code (SimilarCodes only).
func (r Result) BaseCode() string { return r.baseCode }

// Record returns the matched record (ExactMatch only).
func (r Result) Record() (catalog.Record, bool) { return r.record, r.hasRecord }

// Matches returns a copy of the (possibly truncated) matches in catalog order.
func (r Result) Matches() []catalog.Record {
	if len(r.matches) == 0 {
		return nil
	}
	cp := make([]catalog.Record, len(r.matches))
	copy(cp, r.matches)
	return cp
}

// Shown returns the number of matches carried.
func (r Result) Shown() int { return len(r.matches) }

// TotalCount returns the untruncated number of list matches, 0 for variants
// without a list.
func (r Result) TotalCount() int { return r.totalCount }

// Truncated reports whether TotalCount exceeds the tier cap.
func (r Result) Truncated() bool { return r.truncated }

// Equal reports whether two results are the same variant with the same content.
func (r Result) Equal(o Result) bool {
	if r.kind != o.kind || r.query != o.query || r.baseCode != o.baseCode ||
		r.hasRecord != o.hasRecord || r.record != o.record ||
		r.totalCount != o.totalCount || r.truncated != o.truncated ||
		len(r.matches) != len(o.matches) {
		return false
	}
	for i := range r.matches {
		if r.matches[i] != o.matches[i] {
			return false
		}
	}
	return true
}
