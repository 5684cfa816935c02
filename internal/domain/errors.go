package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable signals that the catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidCatalog signals a catalog payload that is not a JSON array of records.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrSourceNotFound signals a missing catalog file, URL or key.
	ErrSourceNotFound = errors.New("catalog source not found")
	// ErrUnknownSource signals an unsupported catalog source kind.
	ErrUnknownSource = errors.New("unknown catalog source")
)

// LoadError wraps ErrCatalogUnavailable with the source that failed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: load from %s: %v", ErrCatalogUnavailable.Error(), e.Source, e.Err)
}

// Is reports ErrCatalogUnavailable for every load error.
func (e *LoadError) Is(target error) bool { return target == ErrCatalogUnavailable }

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError creates a load error for source.
func NewLoadError(source string, err error) error {
	return &LoadError{Source: source, Err: err}
}
