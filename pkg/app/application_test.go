package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelbooking/pkg/config"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/middleware"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes func(*httprouter.Router)

func (f routes) RegisterRoutes(r *httprouter.Router) { f(r) }

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		RequestTimeout:  time.Second,
		MaxRequestSize:  64,
		IdempotencyTTL:  time.Minute,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
		Log:             logger.Discard(),
	}
}

func newTestApp(t *testing.T, closers ...*closeRecorder) *Application {
	t.Helper()
	var created int
	health := routes(func(r *httprouter.Router) {
		r.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	})
	api := routes(func(r *httprouter.Router) {
		r.POST("/api/v1/bookings", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			created++
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte{byte('0' + created)})
		})
	})

	resources := make([]io.Closer, 0, len(closers))
	for _, c := range closers {
		resources = append(resources, c)
	}

	a := NewApplication(testConfig())
	a.SetApp(health, api, resources...)
	t.Cleanup(a.idempotencyStore.Stop)
	return a
}

func post(h http.Handler, body, contentType, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestApplication_Health(t *testing.T) {
	h := newTestApp(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestApplication_MiddlewareStack(t *testing.T) {
	h := newTestApp(t).Handler()

	assert.Equal(t, http.StatusUnsupportedMediaType, post(h, "{}", "text/plain", "").Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(h, strings.Repeat("x", 128), "application/json", "").Code)

	first := post(h, "{}", "application/json", "retry-1")
	replay := post(h, "{}", "application/json", "retry-1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, first.Body.String(), replay.Body.String())
	assert.Equal(t, "true", replay.Header().Get("Idempotent-Replayed"))
}

func TestApplication_ShutdownClosesResources(t *testing.T) {
	c := &closeRecorder{}
	a := newTestApp(t, c)
	a.gracefulShutdown()
	assert.True(t, c.closed)
}
