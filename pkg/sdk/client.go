package catalookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalookup/internal/db"
	dbRedis "github.com/kailas-cloud/catalookup/internal/db/redis"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	catalogrepo "github.com/kailas-cloud/catalookup/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/catalookup/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/catalookup/internal/usecase/lookup"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, replaceable in tests.
type lookupUseCase interface {
	Query(ctx context.Context, raw string) result.Result
}

type catalogUseCase interface {
	Status() cataloguc.Status
}

// Client is the catalookup SDK entry point. It is safe for concurrent use.
type Client struct {
	store      db.Store
	lookupSvc  lookupUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	presenter  *presenter.Presenter
	obs        *observer
}

// New creates a Client and loads the catalog once.
// Unless WithDegradedStart is given, a failed load is returned as an error
// wrapping ErrCatalogUnavailable.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	switch {
	case cfg.sources == 0:
		return nil, errors.New("catalookup: catalog source required (use WithFile, WithURL, WithReader, WithRecords, WithValkey or WithRedis)")
	case cfg.sources > 1:
		return nil, errors.New("catalookup: exactly one catalog source option allowed")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.source == sourceStore {
		store, err = createStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	source, err := buildSource(cfg, store)
	if err != nil {
		closeStore(store)
		return nil, err
	}

	c := wireClient(ctx, source, store, cfg, obs)
	if st := c.catalogSvc.Status(); st.Err != nil && !cfg.degradedStart {
		c.Close()
		return nil, fmt.Errorf("catalookup: %w", st.Err)
	}
	return c, nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
	default:
		return nil, fmt.Errorf("catalookup: unknown driver %q", cfg.driver)
	}
	s, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.addrs,
		Password:   cfg.password,
		Standalone: cfg.standalone,
	})
	if err != nil {
		return nil, fmt.Errorf("catalookup: create %s store: %w", cfg.driver, err)
	}
	if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil && !cfg.degradedStart {
		s.Close()
		return nil, fmt.Errorf("catalookup: database not ready: %w", err)
	}
	return s, nil
}

func buildSource(cfg *clientConfig, store db.Store) (cataloguc.Source, error) {
	switch cfg.source {
	case sourceFile:
		return catalogrepo.NewSource(catalogrepo.Options{Kind: catalogrepo.KindFile, Path: cfg.path})
	case sourceURL:
		return catalogrepo.NewSource(catalogrepo.Options{
			Kind:    catalogrepo.KindHTTP,
			URL:     cfg.url,
			Timeout: cfg.fetchTimeout,
			Client:  cfg.httpClient,
		})
	case sourceStore:
		return catalogrepo.NewSource(catalogrepo.Options{Kind: catalogrepo.KindRedis, Key: cfg.key, Store: store})
	case sourceReader:
		if cfg.reader == nil {
			return nil, errors.New("catalookup: nil reader")
		}
		return &readerSource{r: cfg.reader}, nil
	case sourceRecords:
		recs := make([]domcat.Record, len(cfg.records))
		for i, r := range cfg.records {
			recs[i] = r.toDomain()
		}
		return catalogrepo.NewStaticSource("records", recs), nil
	default:
		return nil, errors.New("catalookup: catalog source required")
	}
}

func wireClient(ctx context.Context, source cataloguc.Source, store db.Store, cfg *clientConfig, obs *observer) *Client {
	catalogSvc := cataloguc.New(source, zap.NewNop())

	start := time.Now()
	err := catalogSvc.Load(ctx)
	obs.observe("load", start, err)

	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}

	return &Client{
		store:      store,
		lookupSvc:  lookupuc.New(catalogSvc).WithRecorder(obs),
		catalogSvc: catalogSvc,
		healthSvc:  healthuc.New(catalogSvc, pinger),
		presenter:  presenter.New(cfg.shop),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	closeStore(c.store)
}

func closeStore(s db.Store) {
	if s != nil {
		s.Close()
	}
}

// Query answers one raw query. It never fails: problems surface as result kinds
// and, when the catalog is unavailable, as the unavailable reply.
func (c *Client) Query(ctx context.Context, raw string) Result {
	start := time.Now()
	res := c.lookupSvc.Query(ctx, raw)
	reply := c.presenter.Render(res, c.catalogSvc.Status().Loaded)
	c.obs.observe("query", start, nil)
	return resultFromDomain(res, reply)
}

// Status reports the outcome of the catalog load.
func (c *Client) Status() CatalogStatus {
	return statusFromDomain(c.catalogSvc.Status())
}
