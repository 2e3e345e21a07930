package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisRateLimiterStore_Allow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := startRedis(t)
	store := NewRedisRateLimiterStore(client, RateLimits{User: 2, Anonymous: 1},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	window := time.Date(2024, 3, 1, 12, 0, 10, 0, time.UTC)
	store.now = func() time.Time { return window }

	for _, want := range []bool{true, true, false} {
		allowed, err := store.Allow("user:7")
		require.NoError(t, err)
		assert.Equal(t, want, allowed)
	}

	allowed, err := store.Allow("anon:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, err = store.Allow("anon:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	ttl, err := client.TTL(context.Background(), fmt.Sprintf("ratelimit:user:7:%d", window.Truncate(time.Minute).Unix())).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	store.now = func() time.Time { return window.Add(time.Minute) }
	allowed, err = store.Allow("user:7")
	require.NoError(t, err)
	assert.True(t, allowed, "a new window starts a new count")
}
