package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// Status describes the outcome of the single catalog load.
type Status struct {
	Loaded      bool
	Attempted   bool
	Source      string
	RecordCount int
	LoadedAt    time.Time
	Err         error
}

type snapshot struct {
	catalog domcat.Catalog
	status  Status
}

// Service is the catalog store: it loads the catalog once and serves the
// immutable result afterwards. A failed load leaves the empty catalog.
type Service struct {
	source   Source
	logger   *zap.Logger
	recorder LoadRecorder
	now      func() time.Time

	once  sync.Once
	state atomic.Pointer[snapshot]
}

// New creates a catalog store backed by source.
func New(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{source: source, logger: logger, now: time.Now}
	s.state.Store(&snapshot{
		catalog: domcat.Empty(),
		status:  Status{Source: source.Name()},
	})
	return s
}

// WithRecorder attaches a load recorder (metrics).
func (s *Service) WithRecorder(r LoadRecorder) *Service {
	s.recorder = r
	return s
}

// Load fetches the catalog. Only the first call reaches the source; later
// calls return the outcome of the first one. The returned error wraps
// domain.ErrCatalogUnavailable.
func (s *Service) Load(ctx context.Context) error {
	s.once.Do(func() { s.load(ctx) })
	return s.state.Load().status.Err
}

func (s *Service) load(ctx context.Context) {
	name := s.source.Name()
	start := s.now()

	records, err := s.source.Load(ctx)
	if err != nil {
		loadErr := domain.NewLoadError(name, err)
		s.state.Store(&snapshot{
			catalog: domcat.Empty(),
			status:  Status{Attempted: true, Source: name, Err: loadErr},
		})
		s.logger.Error("Catalog load failed",
			zap.String("source", name),
			zap.Error(err),
		)
		if s.recorder != nil {
			s.recorder.ObserveLoad(name, 0, loadErr)
		}
		return
	}

	cat := domcat.New(records)
	s.state.Store(&snapshot{
		catalog: cat,
		status: Status{
			Loaded:      true,
			Attempted:   true,
			Source:      name,
			RecordCount: cat.Len(),
			LoadedAt:    start,
		},
	})
	fields := []zap.Field{
		zap.String("source", name),
		zap.Int("records", cat.Len()),
		zap.Duration("duration", s.now().Sub(start)),
	}
	if cat.IsEmpty() {
		// Every query will come back empty.
		s.logger.Warn("Catalog loaded with no records", fields...)
	} else {
		s.logger.Info("Catalog loaded", fields...)
	}
	if s.recorder != nil {
		s.recorder.ObserveLoad(name, cat.Len(), nil)
	}
}

// Catalog returns the loaded catalog, empty before Load or after a failure.
func (s *Service) Catalog() domcat.Catalog {
	return s.state.Load().catalog
}

// Status returns the load outcome.
func (s *Service) Status() Status {
	return s.state.Load().status
}

// HealthCheck reports whether the catalog is usable.
func (s *Service) HealthCheck(_ context.Context) error {
	st := s.Status()
	if st.Err != nil {
		return st.Err
	}
	if !st.Loaded {
		return domain.ErrCatalogUnavailable
	}
	return nil
}
