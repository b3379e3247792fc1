package testutil

import (
	"context"
	"net/http"
	"testing"

	"nba-draft-hub/internal/metrics"
)

// NewScrapedRecorder sets up an enabled recorder with its Prometheus exporter
// and returns a func that scrapes the current exposition text.
func NewScrapedRecorder(t testing.TB) (*metrics.Recorder, func() string) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, func() string {
		return Serve(handler, http.MethodGet, "/metrics", nil).Body.String()
	}
}
