package db

import (
	"context"
	"time"
)

// Store is the key-value backend facade used for catalog snapshots.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides read access to plain string keys.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}
