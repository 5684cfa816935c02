package chi

import (
	"time"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
)

// Error codes.
const (
	codeBadRequest       = "bad_request"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternalError    = "internal_error"
)

type queryRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type recordResponse struct {
	Code           string `json:"code"`
	OfficialName   string `json:"official_name"`
	ElaboratedName string `json:"elaborated_name"`
	ArticleNumber  string `json:"article_number"`
	Orderable      bool   `json:"orderable"`
}

type catalogResponse struct {
	Loaded      bool       `json:"loaded"`
	Source      string     `json:"source"`
	RecordCount int        `json:"record_count"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type cardResponse struct {
	Code           string `json:"code"`
	OfficialName   string `json:"official_name"`
	ArticleNumber  string `json:"article_number,omitempty"`
	ElaboratedName string `json:"elaborated_name,omitempty"`
	Orderable      bool   `json:"orderable"`
	Availability   string `json:"availability"`
}

type itemResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Query string `json:"query"`
}

type replyResponse struct {
	Text   []string       `json:"text,omitempty"`
	Card   *cardResponse  `json:"card,omitempty"`
	Items  []itemResponse `json:"items,omitempty"`
	Notice string         `json:"notice,omitempty"`
	Hints  []string       `json:"hints,omitempty"`
	Footer string         `json:"footer,omitempty"`
}

type queryResponse struct {
	Kind         string           `json:"kind"`
	Query        string           `json:"query"`
	SearchedCode string           `json:"searched_code,omitempty"`
	BaseCode     string           `json:"base_code,omitempty"`
	Record       *recordResponse  `json:"record,omitempty"`
	Matches      []recordResponse `json:"matches"`
	TotalCount   int              `json:"total_count"`
	Truncated    bool             `json:"truncated"`
	Reply        replyResponse    `json:"reply"`
	Catalog      catalogResponse  `json:"catalog"`
}

func recordToResponse(r catalog.Record) recordResponse {
	return recordResponse{
		Code:           r.Code(),
		OfficialName:   r.OfficialName(),
		ElaboratedName: r.ElaboratedName(),
		ArticleNumber:  r.ArticleNumber(),
		Orderable:      r.Orderable(),
	}
}

func queryToResponse(res result.Result, reply presenter.Reply, st cataloguc.Status) queryResponse {
	resp := queryResponse{
		Kind:       string(res.Kind()),
		Query:      res.Query(),
		BaseCode:   res.BaseCode(),
		TotalCount: res.TotalCount(),
		Truncated:  res.Truncated(),
		Reply:      replyToResponse(reply),
		Catalog:    catalogToResponse(st),
	}
	if res.Kind().IsCodeTier() {
		resp.SearchedCode = res.Query()
	}
	if rec, ok := res.Record(); ok {
		rr := recordToResponse(rec)
		resp.Record = &rr
	}

	matches := res.Matches()
	resp.Matches = make([]recordResponse, len(matches))
	for i, m := range matches {
		resp.Matches[i] = recordToResponse(m)
	}
	return resp
}

func replyToResponse(r presenter.Reply) replyResponse {
	resp := replyResponse{
		Text:   r.Text,
		Notice: r.Notice,
		Hints:  r.Hints,
		Footer: r.Footer,
	}
	if c := r.Card; c != nil {
		resp.Card = &cardResponse{
			Code:           c.Code,
			OfficialName:   c.OfficialName,
			ArticleNumber:  c.ArticleNumber,
			ElaboratedName: c.ElaboratedName,
			Orderable:      c.Orderable,
			Availability:   c.Availability,
		}
	}
	if len(r.Items) > 0 {
		resp.Items = make([]itemResponse, len(r.Items))
		for i, it := range r.Items {
			resp.Items[i] = itemResponse{Code: it.Code, Name: it.Name, Query: it.Query}
		}
	}
	return resp
}

func catalogToResponse(st cataloguc.Status) catalogResponse {
	resp := catalogResponse{
		Loaded:      st.Loaded,
		Source:      st.Source,
		RecordCount: st.RecordCount,
	}
	if st.Loaded {
		t := st.LoadedAt.UTC()
		resp.LoadedAt = &t
	}
	if st.Err != nil {
		resp.Error = safeDomainMessage(st.Err)
	}
	return resp
}
