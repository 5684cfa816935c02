package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether the catalog was loaded.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
