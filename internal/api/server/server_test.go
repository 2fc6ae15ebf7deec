package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/linked-calc/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fixedHealth bool

func (f fixedHealth) Healthy(context.Context) bool { return bool(f) }

func newTestServer(healthy bool) *Server {
	cfg := &Config{Port: "0", CorsOrigins: []string{"*"}}
	return New(cfg, fixedHealth(healthy)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("linkedcalc_up 1\n"))
		}))
}

func TestServer_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		code    int
	}{
		{"healthy", true, http.StatusOK},
		{"unhealthy", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.healthy)
			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(true)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "linkedcalc_up 1")
}

func TestServer_ErrorHandler(t *testing.T) {
	s := newTestServer(true)
	s.Echo.GET("/boom", func(c echo.Context) error {
		return apperr.NewValidation("bad input")
	})
	s.Echo.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad input","title":"validation error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ShutdownSignal(t *testing.T) {
	s := newTestServer(true)
	select {
	case <-s.ShutdownSignal():
		t.Fatal("shutdown signalled before any signal arrived")
	default:
	}
	s.stop()
	<-s.ShutdownSignal()
	assert.Error(t, s.Context().Err())
}

func TestServer_RequestLogSkipsHealthAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	s := newTestServer(true)
	s.Echo.POST("/api/v1/evaluate", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/health", "/metrics"} {
		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Empty(t, buf.String())

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/evaluate", nil))
	assert.Contains(t, buf.String(), "uri=/api/v1/evaluate")
}
