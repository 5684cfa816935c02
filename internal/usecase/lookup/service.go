package lookup

import (
	"context"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/input"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
)

// Process classifies raw input and dispatches it to code resolution or text
// search. It is a pure function of (raw, cat).
func Process(raw string, cat catalog.Catalog) result.Result {
	q := input.Trim(raw)
	switch input.Classify(q) {
	case input.Empty:
		return result.Empty()
	case input.Code:
		return ResolveCode(q, cat)
	default:
		return SearchText(q, cat)
	}
}

// Service answers catalog queries against the provider's catalog.
// It holds no state of its own and is safe for concurrent use.
type Service struct {
	catalogs CatalogProvider
	recorder ResultRecorder
}

// New creates a lookup service.
func New(catalogs CatalogProvider) *Service {
	return &Service{catalogs: catalogs}
}

// WithRecorder attaches a result recorder (metrics).
func (s *Service) WithRecorder(r ResultRecorder) *Service {
	s.recorder = r
	return s
}

// Query processes a raw user query.
func (s *Service) Query(_ context.Context, raw string) result.Result {
	res := Process(raw, s.catalogs.Catalog())
	if s.recorder != nil {
		s.recorder.ObserveResult(res.Kind())
	}
	return res
}
