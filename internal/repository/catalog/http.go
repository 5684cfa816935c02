package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// maxCatalogBytes bounds the downloaded payload.
const maxCatalogBytes = 64 << 20

// HTTPSource fetches the catalog with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP-backed source. timeout <= 0 means 10s.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// WithClient overrides the HTTP client.
func (s *HTTPSource) WithClient(c *http.Client) *HTTPSource {
	s.client = c
	return s
}

// Name identifies the source in logs and metrics.
func (s *HTTPSource) Name() string { return "http" }

// Load fetches and decodes the catalog. There is no retry: a failed fetch
// leaves the session without a catalog.
func (s *HTTPSource) Load(ctx context.Context) ([]domcat.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, s.url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	records, err := Decode(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}
	return records, nil
}
