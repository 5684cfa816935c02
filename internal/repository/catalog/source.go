package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
	catalogsvc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
)

// Source kinds.
const (
	KindFile  = "file"
	KindHTTP  = "http"
	KindRedis = "redis"
)

// Options selects and configures a catalog source.
type Options struct {
	Kind    string
	Path    string
	URL     string
	Key     string
	Timeout time.Duration
	Client  *http.Client // optional for KindHTTP; overrides Timeout
	Store   store        // required for KindRedis
}

// NewSource builds the source described by opts.
func NewSource(opts Options) (catalogsvc.Source, error) {
	switch opts.Kind {
	case KindFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file source: path is required")
		}
		return NewFileSource(opts.Path), nil
	case KindHTTP:
		if opts.URL == "" {
			return nil, fmt.Errorf("http source: url is required")
		}
		src := NewHTTPSource(opts.URL, opts.Timeout)
		if opts.Client != nil {
			src = src.WithClient(opts.Client)
		}
		return src, nil
	case KindRedis:
		if opts.Store == nil {
			return nil, fmt.Errorf("redis source: store is required")
		}
		return NewRedisSource(opts.Store, opts.Key), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, opts.Kind)
	}
}

// LocationKind guesses the source kind of a CLI location argument:
// http(s) URLs are fetched, anything else is a file path.
func LocationKind(location string) string {
	l := strings.ToLower(location)
	if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") {
		return KindHTTP
	}
	return KindFile
}

// StaticSource serves records that are already in memory.
type StaticSource struct {
	name    string
	records []domcat.Record
}

// NewStaticSource creates an in-memory source.
func NewStaticSource(name string, records []domcat.Record) *StaticSource {
	return &StaticSource{name: name, records: records}
}

// Name identifies the source in logs and metrics.
func (s *StaticSource) Name() string { return s.name }

// Load returns the records.
func (s *StaticSource) Load(_ context.Context) ([]domcat.Record, error) {
	return s.records, nil
}
