package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beautyhub/config"
	"beautyhub/infras/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(&config.Config{})

	m.ReservationsCommitted.WithLabelValues("demo-barberia").Inc()
	m.ReservationsCommitted.WithLabelValues("demo-barberia").Inc()
	m.SlotConflicts.WithLabelValues("demo-barberia").Inc()
	m.CommitRetries.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCommitted.WithLabelValues("demo-barberia")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflicts.WithLabelValues("demo-barberia")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommitRetries))
}

func TestMetrics_Handler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "shop"

	m := metrics.New(cfg)
	m.CommitRetries.Inc()

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "shop_ledger_commit_retries_total 1"))
}
