package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalookup/internal/config"
	dbRedis "github.com/kailas-cloud/catalookup/internal/db/redis"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	logpkg "github.com/kailas-cloud/catalookup/internal/logger"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	catalogrepo "github.com/kailas-cloud/catalookup/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
	lookupuc "github.com/kailas-cloud/catalookup/internal/usecase/lookup"
)

// app wires the catalog, lookup and presenter for one CLI invocation.
type app struct {
	catalog   *cataloguc.Service
	lookup    *lookupuc.Service
	presenter *presenter.Presenter
	logger    *zap.Logger
	closers   []func()
}

// newApp builds the services and loads the catalog once. A failed load is
// reported by catalog.Status, not as an error.
func newApp(ctx context.Context) (*app, error) {
	logger, err := logpkg.NewLogger("local", logLevel)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger}
	opts, shop, err := a.sourceOptions(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	if shopName != "" {
		shop = shopName
	}

	source, err := catalogrepo.NewSource(opts)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.catalog = cataloguc.New(source, logger)
	_ = a.catalog.Load(ctx)
	a.lookup = lookupuc.New(a.catalog)
	a.presenter = presenter.New(shop)
	return a, nil
}

// sourceOptions picks the --catalog location when given, the config file otherwise.
func (a *app) sourceOptions(ctx context.Context) (catalogrepo.Options, string, error) {
	timeout := time.Duration(fetchTimeout) * time.Second
	if catalogLocation != "" {
		opts := catalogrepo.Options{Kind: catalogrepo.LocationKind(catalogLocation), Timeout: timeout}
		if opts.Kind == catalogrepo.KindHTTP {
			opts.URL = catalogLocation
		} else {
			opts.Path = catalogLocation
		}
		return opts, presenter.DefaultShop, nil
	}

	cfg, err := config.Load(config.GetEnv())
	if err != nil {
		return catalogrepo.Options{}, "", fmt.Errorf("%w (use --catalog to point at a catalog file)", err)
	}

	opts := catalogrepo.Options{
		Kind:    cfg.Catalog.Source,
		Path:    cfg.Catalog.Path,
		URL:     cfg.Catalog.URL,
		Key:     cfg.Catalog.Key,
		Timeout: time.Duration(cfg.Catalog.FetchTimeoutSec) * time.Second,
	}
	if cfg.Catalog.Source == config.SourceRedis {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Database.Addrs,
			Password:   cfg.Database.Password,
			Standalone: cfg.Database.Standalone,
		})
		if err != nil {
			return catalogrepo.Options{}, "", fmt.Errorf("connect database: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			a.logger.Warn("Database not ready", zap.Error(err))
		}
		opts.Store = store
	}
	return opts, cfg.Presentation.Shop, nil
}

func (a *app) available() bool {
	return a.catalog.Status().Loaded
}

// ask answers one query with the raw result and its rendered reply.
func (a *app) ask(ctx context.Context, raw string) (result.Result, presenter.Reply) {
	res := a.lookup.Query(ctx, raw)
	return res, a.presenter.Render(res, a.available())
}

// Close releases connections and flushes logs.
func (a *app) Close() {
	for _, c := range a.closers {
		c()
	}
	_ = a.logger.Sync()
}
