package catalookup

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceFile
	sourceURL
	sourceReader
	sourceRecords
	sourceStore
)

type clientConfig struct {
	source  sourceKind
	sources int // number of source options given

	path    string
	url     string
	reader  io.Reader
	records []Record

	driver     string // "valkey" or "redis"
	addrs      []string
	password   string
	key        string
	standalone bool

	fetchTimeout  time.Duration
	httpClient    *http.Client
	shop          string
	degradedStart bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func (c *clientConfig) setSource(k sourceKind) {
	c.source = k
	c.sources++
}

// WithFile loads the catalog from a local JSON file.
func WithFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceFile)
		c.path = path
	})
}

// WithURL downloads the catalog with a single GET request.
func WithURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceURL)
		c.url = url
	})
}

// WithReader decodes the catalog JSON from r.
func WithReader(r io.Reader) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceReader)
		c.reader = r
	})
}

// WithRecords uses the given records as the catalog.
func WithRecords(records ...Record) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceRecords)
		c.records = records
	})
}

// WithValkey reads the catalog snapshot from key on a Valkey instance.
// An empty key means "catalookup:catalog".
func WithValkey(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceStore)
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithRedis reads the catalog snapshot from key on a Redis instance.
// An empty key means "catalookup:catalog".
func WithRedis(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.setSource(sourceStore)
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
		c.key = key
	})
}

// WithStandalone disables cluster topology discovery for WithValkey/WithRedis.
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithFetchTimeout bounds the WithURL download. Default: 10s.
func WithFetchTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.fetchTimeout = d
	})
}

// WithHTTPClient sets the client used by WithURL, for example to share a
// transport with the host application. It takes precedence over WithFetchTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithShop sets the shop named in availability lines. Default: vdm.ru.
func WithShop(shop string) Option {
	return optionFunc(func(c *clientConfig) {
		c.shop = shop
	})
}

// WithDegradedStart makes New succeed even when the catalog fails to load.
// Queries then run against an empty catalog and Status reports the error.
func WithDegradedStart() Option {
	return optionFunc(func(c *clientConfig) {
		c.degradedStart = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithMetrics registers SDK metrics (operation counts, durations and result
// kinds) on the given registerer. Pass nil to disable (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
