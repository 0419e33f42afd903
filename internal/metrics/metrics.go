package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for record-set loads and the web surface.
// All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	// Load outcomes by source kind and result (applied, stale, unchanged, failed)
	LoadsTotal *prometheus.CounterVec

	// Failed loads by pipeline phase
	LoadFailures *prometheus.CounterVec

	LoadDuration prometheus.Histogram

	RowsDropped prometheus.Counter

	// Rows in the applied record set
	RecordSetSize prometheus.Gauge

	// HTTP requests by route pattern and status code
	Requests *prometheus.CounterVec

	ThemeToggles prometheus.Counter
}

// New creates a Metrics instance registered on its own registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		LoadsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sitecards_loads_total",
			Help: "Total record-set loads by source kind and result",
		}, []string{"source", "result"}),

		LoadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sitecards_load_failures_total",
			Help: "Failed loads by pipeline phase",
		}, []string{"phase"}),

		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sitecards_load_duration_seconds",
			Help:    "Duration of a full load from read to apply",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		RowsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "sitecards_rows_dropped_total",
			Help: "Rows discarded during sanitization for lacking a name",
		}),

		RecordSetSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "sitecards_records",
			Help: "Number of sites in the applied record set",
		}),

		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sitecards_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),

		ThemeToggles: f.NewCounter(prometheus.CounterOpts{
			Name: "sitecards_theme_changes_total",
			Help: "Theme preference changes",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveLoad records the outcome of a load that got past the read phase.
func (m *Metrics) ObserveLoad(source, result string, d time.Duration) {
	if m != nil {
		m.LoadsTotal.WithLabelValues(source, result).Inc()
		m.LoadDuration.Observe(d.Seconds())
	}
}

// IncrementLoadFailure records a load that failed in the given phase.
func (m *Metrics) IncrementLoadFailure(source, phase string) {
	if m != nil {
		m.LoadsTotal.WithLabelValues(source, "failed").Inc()
		m.LoadFailures.WithLabelValues(phase).Inc()
	}
}

// AddDropped records rows removed by sanitization.
func (m *Metrics) AddDropped(n int) {
	if m != nil && n > 0 {
		m.RowsDropped.Add(float64(n))
	}
}

// SetRecordSetSize records the size of the applied record set.
func (m *Metrics) SetRecordSetSize(n int) {
	if m != nil {
		m.RecordSetSize.Set(float64(n))
	}
}

// IncrementRequest records a served HTTP request.
func (m *Metrics) IncrementRequest(route string, code int) {
	if m != nil {
		m.Requests.WithLabelValues(route, statusLabel(code)).Inc()
	}
}

// IncrementThemeToggle records a theme change.
func (m *Metrics) IncrementThemeToggle() {
	if m != nil {
		m.ThemeToggles.Inc()
	}
}

func statusLabel(code int) string {
	if code == 0 {
		code = http.StatusOK
	}
	return strconv.Itoa(code)
}
