package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalookup/internal/config"
	dbRedis "github.com/kailas-cloud/catalookup/internal/db/redis"
	logpkg "github.com/kailas-cloud/catalookup/internal/logger"
	"github.com/kailas-cloud/catalookup/internal/metrics"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	catalogrepo "github.com/kailas-cloud/catalookup/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/catalookup/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/catalookup/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/catalookup/internal/usecase/lookup"
	"github.com/kailas-cloud/catalookup/internal/version"
)

func main() {
	// Optional .env for local runs; real env vars win.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalookup API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	ctx := context.Background()
	metrics.RegisterLookupMetrics()

	srcOpts := catalogrepo.Options{
		Kind:    cfg.Catalog.Source,
		Path:    cfg.Catalog.Path,
		URL:     cfg.Catalog.URL,
		Key:     cfg.Catalog.Key,
		Timeout: time.Duration(cfg.Catalog.FetchTimeoutSec) * time.Second,
	}

	// The database is only needed for the redis source.
	var pinger healthuc.DBPinger
	if cfg.Catalog.Source == config.SourceRedis {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.Database.Addrs,
			Password:   cfg.Database.Password,
			Standalone: cfg.Database.Standalone,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Error("Database not ready", zap.Error(err))
		} else {
			logger.Info("Connected to database",
				zap.String("driver", cfg.Database.Driver),
				zap.Strings("addrs", cfg.Database.Addrs),
			)
		}
		srcOpts.Store = store
		pinger = store
	}

	source, err := catalogrepo.NewSource(srcOpts)
	if err != nil {
		logger.Fatal("Invalid catalog source", zap.Error(err))
	}

	recorder := metrics.Recorder{}
	catalogSvc := cataloguc.New(source, logger).WithRecorder(recorder)

	// A failed load is not fatal: the service logs it once and starts degraded.
	_ = catalogSvc.Load(ctx)

	lookupSvc := lookupuc.New(catalogSvc).WithRecorder(recorder)
	healthSvc := healthuc.New(catalogSvc, pinger)

	server := chiTransport.NewServer(lookupSvc, catalogSvc, healthSvc, presenter.New(cfg.Presentation.Shop), logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
