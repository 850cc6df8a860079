package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsAreIndependent(t *testing.T) {
	// two instances must not panic on duplicate registration
	first := New()
	second := New()

	first.ReadingsIngested.WithLabelValues("http").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.ReadingsIngested.WithLabelValues("http")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.ReadingsIngested.WithLabelValues("http")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.Predictions.WithLabelValues("temp_c", "high").Add(2)
	m.AlertWriteFailures.Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `smartfloors_predictions_total{risk="high",variable="temp_c"} 2`)
	assert.Contains(t, string(body), "smartfloors_alert_write_failures_total 1")
}
