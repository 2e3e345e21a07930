package http

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"littlelemon/internal/adapters/in/http/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	userPrefix      = "user:"
	anonymousPrefix = "anon:"

	rateWindow   = time.Minute
	redisTimeout = 500 * time.Millisecond
)

// RateLimits are request quotas per minute. A zero quota disables limiting for that
// kind of caller.
type RateLimits struct {
	User      int
	Anonymous int
}

func (l RateLimits) For(identifier string) int {
	if strings.HasPrefix(identifier, userPrefix) {
		return l.User
	}
	return l.Anonymous
}

// RateLimitIdentifier keys authenticated callers by user id and anonymous callers by
// client address.
func RateLimitIdentifier(c echo.Context) (string, error) {
	if p := auth.PrincipalFrom(c); p.IsAuthenticated() {
		return userPrefix + p.UserID.String(), nil
	}
	return anonymousPrefix + c.RealIP(), nil
}

// RateLimiter wraps store into echo's rate limiting middleware. It must run after the
// auth middleware so that callers are keyed by user.
func RateLimiter(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: RateLimitIdentifier,
	})
}

// RedisRateLimiterStore counts requests in fixed one minute windows shared by every
// instance of the service.
type RedisRateLimiterStore struct {
	client redis.Cmdable
	limits RateLimits
	logger *slog.Logger
	now    func() time.Time
}

func NewRedisRateLimiterStore(client redis.Cmdable, limits RateLimits, logger *slog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		limits: limits,
		logger: logger.With("component", "rate_limiter"),
		now:    time.Now,
	}
}

// Allow fails open: when redis is unreachable the request is let through and logged.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	limit := s.limits.For(identifier)
	if limit <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	window := s.now().Truncate(rateWindow)
	key := fmt.Sprintf("ratelimit:%s:%d", identifier, window.Unix())

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("rate limit store unavailable", "identifier", identifier, "error", err)
		return true, nil
	}

	return count.Val() <= int64(limit), nil
}

// MemoryRateLimiterStore is the single instance fallback used when no redis address
// is configured. It keeps one token bucket store per kind of caller.
type MemoryRateLimiterStore struct {
	limits    RateLimits
	user      *middleware.RateLimiterMemoryStore
	anonymous *middleware.RateLimiterMemoryStore
}

func NewMemoryRateLimiterStore(limits RateLimits) *MemoryRateLimiterStore {
	return &MemoryRateLimiterStore{
		limits:    limits,
		user:      memoryStore(limits.User),
		anonymous: memoryStore(limits.Anonymous),
	}
}

func (s *MemoryRateLimiterStore) Allow(identifier string) (bool, error) {
	if s.limits.For(identifier) <= 0 {
		return true, nil
	}
	if strings.HasPrefix(identifier, userPrefix) {
		return s.user.Allow(identifier)
	}
	return s.anonymous.Allow(identifier)
}

func memoryStore(perMinute int) *middleware.RateLimiterMemoryStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / rateWindow.Seconds()),
		Burst:     perMinute,
		ExpiresIn: 3 * rateWindow,
	})
}
