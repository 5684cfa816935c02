package lookup

import (
	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
)

// CatalogProvider exposes the loaded, immutable catalog.
type CatalogProvider interface {
	Catalog() catalog.Catalog
}

// ResultRecorder observes the kind of every processed query.
type ResultRecorder interface {
	ObserveResult(k kind.Kind)
}
