package catalog

import (
	"context"

	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// Source fetches catalog records from the backing store (file, HTTP, Redis).
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domcat.Record, error)
}

// LoadRecorder observes catalog load outcomes.
type LoadRecorder interface {
	ObserveLoad(source string, records int, err error)
}
