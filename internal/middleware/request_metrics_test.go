package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitrollup/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.Use(RequestMetrics(metricsManager))
	r.HandleFunc("/gym/summary", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK) // ignored
	}).Methods("GET")
	r.HandleFunc("/activity", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods("POST")

	for range 3 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/gym/summary", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/activity", nil))

	assert.Equal(t, float64(3), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "418")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("POST", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))
	assert.Equal(t, 2, mustGatherAndCount(t, reg, "fitrollup_test_server_request_duration_seconds"))
}

func TestRouteName_NoRoute(t *testing.T) {
	assert.Equal(t, "unknown", routeName(httptest.NewRequest("GET", "/x", nil)))
}

func mustGatherAndCount(t *testing.T, g prometheus.Gatherer, name string) int {
	t.Helper()
	count, err := testutil.GatherAndCount(g, name)
	require.NoError(t, err)
	return count
}
