package catalookup

import (
	"time"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
)

// Kind tags the outcome of a query.
type Kind string

// Query outcomes.
const (
	KindExactMatch     Kind = Kind(kind.ExactMatch)
	KindPartialMatches Kind = Kind(kind.PartialMatches)
	KindSimilarCodes   Kind = Kind(kind.SimilarCodes)
	KindTextMatches    Kind = Kind(kind.TextMatches)
	KindNoCodeResults  Kind = Kind(kind.NoCodeResults)
	KindNoTextResults  Kind = Kind(kind.NoTextResults)
	KindEmptyQuery     Kind = Kind(kind.EmptyQuery)
	KindVagueQuery     Kind = Kind(kind.VagueQuery)
)

// Truncation caps for suggestion lists.
const (
	CodeCap = result.CodeCap
	TextCap = result.TextCap
)

// Reply types rendered for chat front-ends.
type (
	Reply = presenter.Reply
	Card  = presenter.Card
	Item  = presenter.Item
)

// Record is one catalog entry.
type Record struct {
	Code           string
	OfficialName   string
	ElaboratedName string
	ArticleNumber  string
}

// Orderable reports whether the record can be ordered by article number.
func (r Record) Orderable() bool {
	return r.toDomain().Orderable()
}

func (r Record) toDomain() catalog.Record {
	return catalog.NewRecord(r.Code, r.OfficialName, r.ElaboratedName, r.ArticleNumber)
}

func recordFromDomain(r catalog.Record) Record {
	return Record{
		Code:           r.Code(),
		OfficialName:   r.OfficialName(),
		ElaboratedName: r.ElaboratedName(),
		ArticleNumber:  r.ArticleNumber(),
	}
}

// Result is the answer to one query.
type Result struct {
	Kind       Kind
	Query      string  // trimmed input; the searched code for code queries
	BaseCode   string  // ancestor code, set for KindSimilarCodes
	Record     *Record // set for KindExactMatch
	Matches    []Record
	// TotalCount is the untruncated size of Matches, 0 for KindExactMatch.
	TotalCount int
	Truncated  bool
	Reply      Reply
}

func resultFromDomain(r result.Result, reply presenter.Reply) Result {
	out := Result{
		Kind:       Kind(r.Kind()),
		Query:      r.Query(),
		BaseCode:   r.BaseCode(),
		TotalCount: r.TotalCount(),
		Truncated:  r.Truncated(),
		Reply:      reply,
	}
	if rec, ok := r.Record(); ok {
		pr := recordFromDomain(rec)
		out.Record = &pr
	}
	matches := r.Matches()
	out.Matches = make([]Record, len(matches))
	for i, m := range matches {
		out.Matches[i] = recordFromDomain(m)
	}
	return out
}

// CatalogStatus describes the single catalog load.
type CatalogStatus struct {
	Loaded      bool
	Source      string // "file", "http", "redis", "reader" or "records"
	RecordCount int
	LoadedAt    time.Time
	Err         error
}

func statusFromDomain(s cataloguc.Status) CatalogStatus {
	return CatalogStatus{
		Loaded:      s.Loaded,
		Source:      s.Source,
		RecordCount: s.RecordCount,
		LoadedAt:    s.LoadedAt,
		Err:         s.Err,
	}
}
