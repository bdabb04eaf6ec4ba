package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo/internal/pkg/cache"
	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/produto", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_Memory(t *testing.T) {
	h := middleware.RateLimiter(middleware.NewMemoryLimiter(2, time.Minute), logger.Nop())(okHandler)

	first := doRequest(h, "10.0.0.1:5000")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:5001").Code)

	blocked := doRequest(h, "10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "RATE_LIMITED")

	// Outro IP tem a própria cota.
	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.2:5000").Code)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	l := middleware.NewMemoryLimiter(1, time.Second)
	ctx := context.Background()

	d, err := l.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = l.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))

	l.Cleanup()
	d, err = l.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, d.Allowed, "chave recente não é removida")
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	h := middleware.RateLimiter(middleware.NewRedisLimiter(client, 2, time.Minute), logger.Nop())(okHandler)

	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1").Code)
	second := doRequest(h, "10.0.0.1:2")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	blocked := doRequest(h, "10.0.0.1:3")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	// A janela expira e a cota é renovada.
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:4").Code)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (middleware.Decision, error) {
	return middleware.Decision{}, errors.New("connection refused")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	h := middleware.RateLimiter(failingLimiter{}, logger.Nop())(okHandler)
	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1").Code)
}
