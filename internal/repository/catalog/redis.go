package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/catalookup/internal/db"
	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// DefaultKey is the Redis key holding the catalog snapshot.
const DefaultKey = "catalookup:catalog"

// store is the consumer interface for snapshot reads (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// RedisSource reads a JSON catalog snapshot stored under a single key.
type RedisSource struct {
	store store
	key   string
}

// NewRedisSource creates a Redis/Valkey-backed source.
func NewRedisSource(s store, key string) *RedisSource {
	if key == "" {
		key = DefaultKey
	}
	return &RedisSource{store: s, key: key}
}

// Name identifies the source in logs and metrics.
func (s *RedisSource) Name() string { return "redis" }

// Load reads and decodes the snapshot.
func (s *RedisSource) Load(ctx context.Context) ([]domcat.Record, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: key %s", domain.ErrSourceNotFound, s.key)
		}
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}
	records, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode key %s: %w", s.key, err)
	}
	return records, nil
}
