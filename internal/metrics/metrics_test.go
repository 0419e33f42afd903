package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveLoad("file", "applied", time.Second)
	m.IncrementLoadFailure("file", "parse")
	m.AddDropped(3)
	m.SetRecordSetSize(10)
	m.IncrementRequest("/", 200)
	m.IncrementThemeToggle()
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCounters(t *testing.T) {
	m := New()
	m.ObserveLoad("file", "applied", 10*time.Millisecond)
	m.IncrementLoadFailure("url", "read")
	m.AddDropped(2)
	m.AddDropped(0)
	m.SetRecordSetSize(7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("file", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadsTotal.WithLabelValues("url", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadFailures.WithLabelValues("read")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RowsDropped))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.RecordSetSize))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.AddDropped(1)
	m.IncrementRequest("/api/sites", 200)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "sitecards_rows_dropped_total 1"))
	assert.Contains(t, body, `sitecards_http_requests_total{code="200",route="/api/sites"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestInstancesDoNotShareState(t *testing.T) {
	a, b := New(), New()
	a.AddDropped(5)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RowsDropped))
}
