package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/catalookup/internal/domain"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockCatalogChecker struct {
	err error
}

func (m *mockCatalogChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_CatalogOnly(t *testing.T) {
	r := New(&mockCatalogChecker{}, nil).Check(context.Background())

	if !r.Healthy() {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if len(r.Checks) != 1 || r.Checks[CheckCatalog] != CheckOK {
		t.Errorf("unexpected checks: %v", r.Checks)
	}
	if _, ok := r.Checks[CheckDatabase]; ok {
		t.Error("database check must be absent without a pinger")
	}
}

func TestCheck_AllHealthy(t *testing.T) {
	r := New(&mockCatalogChecker{}, &mockDBPinger{}).Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks[CheckDatabase] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks[CheckDatabase])
	}
}

func TestCheck_CatalogUnavailable(t *testing.T) {
	r := New(&mockCatalogChecker{err: domain.ErrCatalogUnavailable}, nil).Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[CheckCatalog] != CheckError {
		t.Errorf("expected catalog %q, got %q", CheckError, r.Checks[CheckCatalog])
	}
}

func TestCheck_DBError(t *testing.T) {
	r := New(&mockCatalogChecker{}, &mockDBPinger{err: errors.New("conn refused")}).Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[CheckCatalog] != CheckOK {
		t.Errorf("expected catalog %q, got %q", CheckOK, r.Checks[CheckCatalog])
	}
	if r.Checks[CheckDatabase] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks[CheckDatabase])
	}
}
