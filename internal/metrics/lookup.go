package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
)

// Lookup Prometheus metrics.
var (
	QueryResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalookup",
			Name:      "query_results_total",
			Help:      "Total processed queries by result kind",
		},
		[]string{"kind"},
	)

	CatalogRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "catalookup",
			Name:      "catalog_records",
			Help:      "Number of records in the loaded catalog",
		},
	)

	CatalogLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalookup",
			Name:      "catalog_loads_total",
			Help:      "Catalog load attempts by source and outcome",
		},
		[]string{"source", "status"}, // "ok" / "error"
	)
)

var registerLookupOnce sync.Once

// RegisterLookupMetrics registers lookup and catalog metrics. Safe to call more than once.
func RegisterLookupMetrics() {
	registerLookupOnce.Do(func() {
		prometheus.MustRegister(QueryResultsTotal)
		prometheus.MustRegister(CatalogRecords)
		prometheus.MustRegister(CatalogLoadsTotal)
	})
}

// Recorder feeds use-case outcomes into the package metrics.
type Recorder struct{}

// ObserveResult counts a processed query by its result kind.
func (Recorder) ObserveResult(k kind.Kind) {
	QueryResultsTotal.WithLabelValues(string(k)).Inc()
}

// ObserveLoad records a catalog load attempt.
func (Recorder) ObserveLoad(source string, records int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CatalogLoadsTotal.WithLabelValues(source, status).Inc()
	CatalogRecords.Set(float64(records))
}
