package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckCatalog  = "catalog"
	CheckDatabase = "database"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool { return r.Status == Healthy }

// Service coordinates health checks.
type Service struct {
	catalog CatalogChecker
	db      DBPinger
}

// New creates a Service. db is nil unless the catalog comes from Redis/Valkey.
func New(catalog CatalogChecker, db DBPinger) *Service {
	return &Service{catalog: catalog, db: db}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{
		CheckCatalog: result(s.catalog.HealthCheck(ctx)),
	}
	if s.db != nil {
		checks[CheckDatabase] = result(s.db.Ping(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
