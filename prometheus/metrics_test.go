package prometheus

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-bff/pkg/config"
)

func TestMain(m *testing.M) {
	// promauto registers against the default registry, so metrics can only
	// be initialized once per process.
	InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test_bff"}})
	m.Run()
}

func TestObservePlatformRequestRecordsFailures(t *testing.T) {
	require.NotPanics(t, func() {
		ObservePlatformRequest("GET", http.StatusNotFound, 25*time.Millisecond)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "Not Found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PlatformErrorsCounter.WithLabelValues("GET", "Not Found")))
}

func TestObservePlatformRequestLabelsUnreachable(t *testing.T) {
	require.NotPanics(t, func() {
		ObservePlatformRequest("POST", 0, time.Millisecond)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("POST", "unreachable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(PlatformErrorsCounter.WithLabelValues("POST", "unreachable")))
}

func TestObservePlatformRequestSuccessIsNotAnError(t *testing.T) {
	ObservePlatformRequest("GET", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(PlatformRequestsTotal.WithLabelValues("GET", "OK")))
	assert.Equal(t, 0.0, testutil.ToFloat64(PlatformErrorsCounter.WithLabelValues("GET", "OK")))
}
