package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimits_For(t *testing.T) {
	limits := RateLimits{User: 60, Anonymous: 20}

	assert.Equal(t, 60, limits.For("user:7"))
	assert.Equal(t, 20, limits.For("anon:10.0.0.1"))
}

func TestRateLimitIdentifier(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/menu-items", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	c := e.NewContext(req, httptest.NewRecorder())

	id, err := RateLimitIdentifier(c)
	require.NoError(t, err)
	assert.Equal(t, "anon:10.0.0.1", id)

	c.Set("principal", &identity.Principal{UserID: 7})
	id, err = RateLimitIdentifier(c)
	require.NoError(t, err)
	assert.Equal(t, "user:7", id)
}

func TestMemoryRateLimiterStore_Allow(t *testing.T) {
	store := NewMemoryRateLimiterStore(RateLimits{User: 3, Anonymous: 1})

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("user:7")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}
	allowed, err := store.Allow("user:7")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("user:8")
	require.NoError(t, err)
	assert.True(t, allowed, "quotas are per user")

	allowed, _ = store.Allow("anon:10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = store.Allow("anon:10.0.0.1")
	assert.False(t, allowed)
}

func TestMemoryRateLimiterStore_ZeroQuotaDisablesLimit(t *testing.T) {
	store := NewMemoryRateLimiterStore(RateLimits{User: 0, Anonymous: 1})

	for i := 0; i < 10; i++ {
		allowed, err := store.Allow("user:7")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisRateLimiterStore(client, RateLimits{User: 1, Anonymous: 1},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("user:7")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRateLimiter_Denies(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/menu-items", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimiter(NewMemoryRateLimiterStore(RateLimits{Anonymous: 1})))

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/menu-items", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/menu-items", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
