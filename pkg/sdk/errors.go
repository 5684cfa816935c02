package catalookup

import "github.com/kailas-cloud/catalookup/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrInvalidCatalog     = domain.ErrInvalidCatalog
	ErrSourceNotFound     = domain.ErrSourceNotFound
	ErrUnknownSource      = domain.ErrUnknownSource
)
