package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/todoist-mcp/internal/todoist"
)

func newHealthMux(t *testing.T, sc *ServerContext) (*HealthChecker, *http.ServeMux) {
	t.Helper()
	h := NewHealthChecker(sc, "1.2.3")
	mux := http.NewServeMux()
	h.RegisterHealthEndpoints(mux)
	return h, mux
}

func get(t *testing.T, h http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthChecker_Liveness(t *testing.T) {
	_, mux := newHealthMux(t, nil)

	code, body := get(t, mux, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthChecker_Readiness(t *testing.T) {
	api, err := todoist.New(todoist.Options{Token: "token"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		sc         *ServerContext
		ready      bool
		shutdown   bool
		wantStatus int
	}{
		{"ready", NewServerContext(context.Background(), api, nil), true, false, http.StatusOK},
		{"not ready", NewServerContext(context.Background(), api, nil), false, false, http.StatusServiceUnavailable},
		{"shutting down", NewServerContext(context.Background(), api, nil), true, true, http.StatusServiceUnavailable},
		{"no client", NewServerContext(context.Background(), nil, nil), true, false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mux := newHealthMux(t, tt.sc)
			h.SetReady(tt.ready)
			if tt.shutdown {
				require.NoError(t, tt.sc.Shutdown())
			}

			code, _ := get(t, mux, "/readyz")
			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.ready, h.IsReady())
		})
	}
}

func TestHealthChecker_Detailed(t *testing.T) {
	h, mux := newHealthMux(t, nil)
	h.SetToolCount(33)

	code, body := get(t, mux, "/healthz/detailed")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, float64(33), body["tools"])

	h.SetReady(false)
	code, body = get(t, mux, "/healthz/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", body["status"])
}
