package engine

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faultd/faultd/pkg/config"
	"github.com/faultd/faultd/pkg/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		srv := NewServer(nil)
		require.NotNil(t, srv)
		assert.NotNil(t, srv.cfg)
		assert.NotNil(t, srv.Handler())
		assert.NotNil(t, srv.Simulator())
		assert.False(t, srv.IsRunning())
	})

	t.Run("custom simulator is kept", func(t *testing.T) {
		t.Parallel()
		sim := simulate.NewSimulator()
		srv := NewServer(nil, WithSimulator(sim))
		assert.Same(t, sim, srv.Simulator())
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()
	srv := NewServer(nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "API Failure Simulator is running", body["message"])
}

func TestServer_RootListsEndpoints(t *testing.T) {
	t.Parallel()
	srv := NewServer(nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API Failure Simulator", body["service"])
	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "/simulate/status")
	assert.Contains(t, endpoints, "/simulate/network-error")
}

func TestServer_SimulationRoutesAreMounted(t *testing.T) {
	t.Parallel()
	srv := NewServer(nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/simulate/status?code=418", nil))
	assert.Equal(t, 418, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/simulate/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultServerConfiguration()
	cfg.HTTPPort = freePort(t)
	cfg.Host = "127.0.0.1"
	srv := NewServer(cfg)

	require.NoError(t, srv.Start())
	assert.True(t, srv.IsRunning())
	assert.Error(t, srv.Start(), "double start must fail")

	require.NoError(t, srv.Stop())
	assert.False(t, srv.IsRunning())
	assert.NoError(t, srv.Stop(), "stop is idempotent")
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("wildcard origin", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(inner, nil)
		req := httptest.NewRequest(http.MethodGet, "/simulate/status", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(inner, nil)
		req := httptest.NewRequest(http.MethodOptions, "/simulate/status", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "preflight must not reach the handler")
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("disabled adds no headers", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(inner, &config.CORSConfig{Enabled: false})
		req := httptest.NewRequest(http.MethodGet, "/simulate/status", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin on preflight is 403", func(t *testing.T) {
		t.Parallel()
		m := NewCORSMiddleware(inner, &config.CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{"https://allowed.test"},
		})
		req := httptest.NewRequest(http.MethodOptions, "/simulate/status", nil)
		req.Header.Set("Origin", "https://other.test")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestLogMiddleware(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	mw := RequestLogMiddleware(inner, log)

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/simulate/status?code=418", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/simulate/status", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
}

func TestStatusResponseWriter_DefaultsTo200(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	srw := newStatusResponseWriter(rec)
	_, err := srw.Write([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, srw.statusCode)
}
