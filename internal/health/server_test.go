package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAndLive(t *testing.T) {
	s := NewServer(Config{ServiceName: "gridiron-lines", Version: "test"})
	router := s.Router()

	for _, path := range []string{"/health", "/live"} {
		rec := get(t, router, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "gridiron-lines", body.Service)
	}
}

func TestReadyRequiresFlagAndFeed(t *testing.T) {
	var feedErr error
	s := NewServer(Config{
		ServiceName: "gridiron-lines",
		Feed:        pingerFunc(func(ctx context.Context) error { return feedErr }),
	})
	router := s.Router()

	rec := get(t, router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	rec = get(t, router, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Checks["feed"])

	feedErr = errors.New("connection refused")
	rec = get(t, router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Status)
	assert.Contains(t, body.Checks["feed"], "connection refused")
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gridiron_records_rendered 3\n"))
	})
	s := NewServer(Config{MetricsHandler: metrics, MetricsPath: "/internal/metrics"})
	router := s.Router()

	rec := get(t, router, "/internal/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gridiron_records_rendered")

	assert.Equal(t, http.StatusNotFound, get(t, router, "/metrics").Code)
}

func TestShutdownWithoutStart(t *testing.T) {
	s := NewServer(Config{})
	assert.NoError(t, s.Shutdown())
	assert.False(t, s.IsReady())
}
