package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalookup/internal/domain"
	logpkg "github.com/kailas-cloud/catalookup/internal/logger"
	"github.com/kailas-cloud/catalookup/internal/presenter"
	cataloguc "github.com/kailas-cloud/catalookup/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/catalookup/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/catalookup/internal/usecase/lookup"
)

// maxBodyBytes bounds POST /query bodies.
const maxBodyBytes = 64 << 10

// Server serves the catalog lookup HTTP API.
type Server struct {
	lookup    *lookupuc.Service
	catalog   *cataloguc.Service
	health    *healthuc.Service
	presenter *presenter.Presenter
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	lookup *lookupuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	p *presenter.Presenter,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		lookup:    lookup,
		catalog:   catalog,
		health:    health,
		presenter: p,
		logger:    logger,
	}
}

// QueryGet handles GET /api/v1/query?q=...
func (s *Server) QueryGet(w http.ResponseWriter, r *http.Request) {
	var q *string
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &q); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid query parameter q")
		return
	}
	raw := ""
	if q != nil {
		raw = *q
	}
	s.answer(w, r, raw)
}

// QueryPost handles POST /api/v1/query.
func (s *Server) QueryPost(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body")
		return
	}
	s.answer(w, r, req.Query)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, raw string) {
	res := s.lookup.Query(r.Context(), raw)
	st := s.catalog.Status()

	logpkg.FromContext(r.Context()).Debug("query processed",
		zap.String("kind", string(res.Kind())),
		zap.Int("total_count", res.TotalCount()),
	)

	reply := s.presenter.Render(res, st.Loaded)
	writeJSON(w, http.StatusOK, queryToResponse(res, reply, st))
}

// CatalogStatus handles GET /api/v1/catalog.
func (s *Server) CatalogStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogToResponse(s.catalog.Status()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if !report.Healthy() {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NotFound answers unknown routes with a JSON error.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "route not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrSourceNotFound,
		domain.ErrInvalidCatalog,
		domain.ErrUnknownSource,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}
