package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackpot/internal/cache"
)

func newRateLimitedServer(t *testing.T, max int, window time.Duration) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	counter := cache.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(counter, window, max))
	return e, mr
}

func doRequest(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsUpToMax(t *testing.T) {
	e, _ := newRateLimitedServer(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doRequest(e)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := doRequest(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimit_WindowExpiry(t *testing.T) {
	e, mr := newRateLimitedServer(t, 1, time.Minute)

	require.Equal(t, http.StatusOK, doRequest(e).Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(e).Code)

	// Counter resets after the window elapses.
	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest(e).Code)
}

func TestRateLimit_SeparateClients(t *testing.T) {
	e, _ := newRateLimitedServer(t, 1, time.Minute)

	reqA := httptest.NewRequest(http.MethodPost, "/login", nil)
	reqA.RemoteAddr = "198.51.100.7:4242"
	recA := httptest.NewRecorder()
	e.ServeHTTP(recA, reqA)
	require.Equal(t, http.StatusOK, recA.Code)

	// A different client IP has its own counter.
	reqB := httptest.NewRequest(http.MethodPost, "/login", nil)
	reqB.RemoteAddr = "203.0.113.9:4242"
	recB := httptest.NewRecorder()
	e.ServeHTTP(recB, reqB)
	assert.Equal(t, http.StatusOK, recB.Code)
}

func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	counter := cache.NewFromClient(redis.NewClient(&redis.Options{Addr: addr}))
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(counter, time.Minute, 1))

	// Redis is down, so the limiter must not block anything.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(e).Code)
	}
}
