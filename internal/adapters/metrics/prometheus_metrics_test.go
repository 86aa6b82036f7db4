package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_ObserveReveal(t *testing.T) {
	m := NewPrometheusMetrics("slicex")

	m.ObserveReveal("by_id", "ok")
	m.ObserveReveal("by_id", "ok")
	m.ObserveReveal("page", "unauthorized")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.revealRequests.WithLabelValues("by_id", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.revealRequests.WithLabelValues("page", "unauthorized")))
}

func TestPrometheusMetrics_Handler(t *testing.T) {
	m := NewPrometheusMetrics("slicex")
	m.ObserveReveal("page", "ok")
	m.ObserveHTTP("/reveal-contact", http.MethodPost, http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `slicex_reveal_requests_total{kind="page",outcome="ok"} 1`)
	assert.Contains(t, body, `slicex_http_request_duration_seconds_count{method="POST",route="/reveal-contact",status="200"} 1`)
}
