package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"northern-forge-site/internal/delivery/http/response"
	"northern-forge-site/pkg/logger"
	"northern-forge-site/pkg/metrics"
	"northern-forge-site/pkg/redis"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Route labels the rate limited metric
	Route string
	// Client overrides the shared Redis client; nil means redis.Client()
	Client *goredis.Client
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// DefaultRateLimitConfig is the site-wide budget
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
		Route:     "global",
	}
}

// ContactRateLimitConfig is the strict budget for contact submissions. It
// fails closed: without a working store a burst of form posts would go
// straight to the mail provider.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:contact:",
		FailClosed: true,
		KeyFunc:    clientIP,
		Route:      "contact",
	}
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// Uses Redis when available and an in-process token bucket otherwise.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIP
	}
	fallback := newMemoryLimiter(config.Limit, config.Window)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)

		client := config.Client
		if client == nil {
			client = redis.Client()
		}

		var (
			allowed   bool
			remaining int
			resetAt   time.Time
		)

		if client != nil {
			count, reset, err := checkRateLimitRedis(c.Request.Context(), client, fullKey, config)
			switch {
			case err == nil:
				allowed = count <= config.Limit
				remaining = config.Limit - count
				resetAt = reset
			case config.FailClosed:
				logger.Log.Error("rate limit store unavailable",
					"route", config.Route,
					"request_id", c.GetString(RequestIDKey),
					"error", err,
				)
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			default:
				allowed, remaining, resetAt = fallback.allow(fullKey, time.Now())
			}
		} else {
			allowed, remaining, resetAt = fallback.allow(fullKey, time.Now())
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			metrics.RateLimited.WithLabelValues(config.Route).Inc()
			logger.Log.Warn("rate limit triggered",
				"route", config.Route,
				"ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey),
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter is a per-key token bucket: limit tokens, refilled evenly over
// window. Idle keys are pruned once per window.
type memoryLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	every     rate.Limit
	entries   map[string]*memoryEntry
	lastPrune time.Time
}

func newMemoryLimiter(limit int, window time.Duration) *memoryLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryLimiter{
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
		entries: make(map[string]*memoryEntry),
	}
}

func (m *memoryLimiter) allow(key string, now time.Time) (bool, int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastPrune) > m.window {
		for k, e := range m.entries {
			if now.Sub(e.lastSeen) > m.window {
				delete(m.entries, k)
			}
		}
		m.lastPrune = now
	}

	e, ok := m.entries[key]
	if !ok {
		e = &memoryEntry{limiter: rate.NewLimiter(m.every, m.limit)}
		m.entries[key] = e
	}
	e.lastSeen = now

	allowed := e.limiter.AllowN(now, 1)
	tokens := e.limiter.TokensAt(now)
	missing := float64(m.limit) - tokens
	resetAt := now.Add(time.Duration(missing * float64(m.window) / float64(m.limit)))
	return allowed, int(tokens), resetAt
}
