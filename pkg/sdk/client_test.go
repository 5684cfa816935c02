package catalookup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/catalookup/internal/domain/query/kind"
)

const catalogJSON = `[
  {"code": "1.2", "officialName": "Насос", "elaboratedName": "", "articleNumber": ""},
  {"code": "1.2.5", "officialName": "Клапан", "elaboratedName": "Клапан запорный", "articleNumber": "ART-5"},
  {"Код": "1.3", "По1057": "Фильтр", "ПоЭл": "", "Арт": 40512}
]`

func sampleRecords() []Record {
	return []Record{
		{Code: "1.2", OfficialName: "Насос"},
		{Code: "1.2.5", OfficialName: "Клапан", ElaboratedName: "Клапан запорный", ArticleNumber: "ART-5"},
		{Code: "1.3", OfficialName: "Фильтр"},
	}
}

func TestNew_NoSource(t *testing.T) {
	if _, err := New(context.Background()); err == nil {
		t.Fatal("expected error when no source provided")
	}
}

func TestNew_MultipleSources(t *testing.T) {
	_, err := New(context.Background(), WithFile("a.json"), WithRecords(sampleRecords()...))
	if err == nil {
		t.Fatal("expected error for two sources")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown", addrs: []string{"localhost:1234"}}
	if _, err := createStore(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNew_NilReader(t *testing.T) {
	if _, err := New(context.Background(), WithReader(nil)); err == nil {
		t.Fatal("expected error for nil reader")
	}
}

func TestNew_Sources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(catalogJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	tests := []struct {
		name       string
		opt        Option
		wantSource string
	}{
		{"file", WithFile(path), "file"},
		{"url", WithURL(srv.URL), "http"},
		{"reader", WithReader(strings.NewReader(catalogJSON)), "reader"},
		{"records", WithRecords(sampleRecords()...), "records"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(context.Background(), tc.opt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer c.Close()

			st := c.Status()
			if !st.Loaded || st.RecordCount != 3 || st.Source != tc.wantSource || st.Err != nil {
				t.Errorf("Status() = %+v", st)
			}
			if h := c.Health(context.Background()); h.Status != "ok" || h.Checks["catalog"] != "ok" {
				t.Errorf("Health() = %+v", h)
			}
		})
	}
}

func TestNew_HTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	c, err := New(context.Background(), WithURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()
	if st := c.Status(); !st.Loaded || st.RecordCount != 3 {
		t.Errorf("Status() = %+v", st)
	}

	// A client that cannot reach anything proves the option is honored.
	broken := &http.Client{Transport: &http.Transport{
		Proxy: func(*http.Request) (*url.URL, error) { return nil, errors.New("no route") },
	}}
	_, err = New(context.Background(), WithURL(srv.URL), WithHTTPClient(broken))
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable with broken client, got %v", err)
	}
}

func TestNew_LoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	_, err := New(context.Background(), WithFile(missing))
	if !errors.Is(err, ErrCatalogUnavailable) || !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected unavailable/not found, got %v", err)
	}

	_, err = New(context.Background(), WithReader(strings.NewReader(`{"a":1}`)))
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestNew_DegradedStart(t *testing.T) {
	c, err := New(context.Background(),
		WithFile(filepath.Join(t.TempDir(), "missing.json")),
		WithDegradedStart(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := c.Status()
	if st.Loaded || !errors.Is(st.Err, ErrCatalogUnavailable) {
		t.Errorf("Status() = %+v", st)
	}
	if h := c.Health(context.Background()); h.Status != "degraded" || h.Checks["catalog"] != "error" {
		t.Errorf("Health() = %+v", h)
	}

	res := c.Query(context.Background(), "1.2")
	if res.Kind != KindNoCodeResults {
		t.Errorf("Kind = %q", res.Kind)
	}
	if !strings.Contains(res.Reply.PlainText(), "ошибка при загрузке") {
		t.Errorf("reply = %q", res.Reply.PlainText())
	}
}

func TestQuery(t *testing.T) {
	c, err := New(context.Background(), WithRecords(sampleRecords()...), WithShop("shop.example"))
	if err != nil {
		t.Fatal(err)
	}

	exact := c.Query(context.Background(), " 1.2.5 ")
	if exact.Kind != KindExactMatch || exact.Record == nil || exact.Record.ArticleNumber != "ART-5" {
		t.Fatalf("exact = %+v", exact)
	}
	if exact.TotalCount != 0 || len(exact.Matches) != 0 {
		t.Errorf("exact match carries no list: total=%d matches=%v", exact.TotalCount, exact.Matches)
	}
	if !exact.Record.Orderable() || exact.Reply.Card == nil || !strings.Contains(exact.Reply.Card.Availability, "shop.example") {
		t.Errorf("exact reply = %+v", exact.Reply)
	}

	similar := c.Query(context.Background(), "1.2.9")
	if similar.Kind != KindSimilarCodes || similar.BaseCode != "1.2" || len(similar.Matches) != 2 {
		t.Errorf("similar = %+v", similar)
	}

	text := c.Query(context.Background(), "КЛАПАН")
	if text.Kind != KindTextMatches || text.TotalCount != 1 || text.Matches[0].Code != "1.2.5" {
		t.Errorf("text = %+v", text)
	}

	if got := c.Query(context.Background(), "").Kind; got != KindEmptyQuery {
		t.Errorf("empty Kind = %q", got)
	}
	if got := c.Query(context.Background(), "ab").Kind; got != KindVagueQuery {
		t.Errorf("vague Kind = %q", got)
	}
}

func TestQuery_Truncation(t *testing.T) {
	recs := make([]Record, 30)
	for i := range recs {
		recs[i] = Record{Code: fmt.Sprintf("4.%d", i+1), OfficialName: "Задвижка"}
	}
	c, err := New(context.Background(), WithRecords(recs...))
	if err != nil {
		t.Fatal(err)
	}

	code := c.Query(context.Background(), "4")
	if len(code.Matches) != CodeCap || code.TotalCount != 30 || !code.Truncated {
		t.Errorf("code: shown=%d total=%d truncated=%v", len(code.Matches), code.TotalCount, code.Truncated)
	}
	text := c.Query(context.Background(), "задвижка")
	if len(text.Matches) != TextCap || text.TotalCount != 30 || !text.Truncated {
		t.Errorf("text: shown=%d total=%d truncated=%v", len(text.Matches), text.TotalCount, text.Truncated)
	}
}

func TestQuery_Concurrent(t *testing.T) {
	c, err := New(context.Background(), WithRecords(sampleRecords()...))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res := c.Query(context.Background(), "1.2"); res.Kind != KindExactMatch {
				t.Errorf("Kind = %q", res.Kind)
			}
		}()
	}
	wg.Wait()
}

func TestKindsMatchDomain(t *testing.T) {
	pairs := map[Kind]kind.Kind{
		KindExactMatch:     kind.ExactMatch,
		KindPartialMatches: kind.PartialMatches,
		KindSimilarCodes:   kind.SimilarCodes,
		KindTextMatches:    kind.TextMatches,
		KindNoCodeResults:  kind.NoCodeResults,
		KindNoTextResults:  kind.NoTextResults,
		KindEmptyQuery:     kind.EmptyQuery,
		KindVagueQuery:     kind.VagueQuery,
	}
	for pub, dom := range pairs {
		if string(pub) != string(dom) {
			t.Errorf("%q != %q", pub, dom)
		}
	}
}

func TestObserver_MetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := New(context.Background(), WithRecords(sampleRecords()...), WithMetrics(reg), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	c.Query(context.Background(), "1.2")
	c.Query(context.Background(), "турбина")

	m := c.obs.metrics
	if got := testutil.ToFloat64(m.operations.WithLabelValues("load", "ok")); got != 1 {
		t.Errorf("load ops = %f", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("query", "ok")); got != 2 {
		t.Errorf("query ops = %f", got)
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues("no_text_results")); got != 1 {
		t.Errorf("no_text_results = %f", got)
	}
	if !strings.Contains(logs.String(), "op=query") {
		t.Errorf("expected debug log for query, got %q", logs.String())
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	c1, err := New(context.Background(), WithRecords(sampleRecords()...), WithMetrics(reg))
	if err != nil {
		t.Fatal(err)
	}
	c2, err := New(context.Background(), WithRecords(sampleRecords()...), WithMetrics(reg))
	if err != nil {
		t.Fatalf("second client must reuse collectors: %v", err)
	}
	if c1.obs.metrics.operations != c2.obs.metrics.operations {
		t.Error("expected shared collector")
	}
}

func TestObserver_FailureLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	_, _ = New(context.Background(), WithReader(strings.NewReader("nope")), WithLogger(logger))
	if !strings.Contains(logs.String(), "operation failed") {
		t.Errorf("expected warn log, got %q", logs.String())
	}
}

func TestNilObserver(t *testing.T) {
	var o *observer
	o.observe("x", time.Now(), nil)
	o.ObserveResult(kind.EmptyQuery)
}
