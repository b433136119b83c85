package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Reject with 503 instead of falling back to memory when Redis errors
	FailClosed bool
}

// AuthRateLimitConfig limits registration and login per client IP.
func AuthRateLimitConfig(perMinute int) RateLimitConfig {
	if perMinute <= 0 {
		perMinute = 10
	}
	return RateLimitConfig{
		Limit:     perMinute,
		Window:    time.Minute,
		KeyPrefix: "rl:auth:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
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

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// RateLimiter counts requests per key in fixed windows. Redis holds the
// counters when a client is configured; otherwise, or when Redis fails and
// the config allows it, a process-local map does.
type RateLimiter struct {
	client *goredis.Client
	audit  *security.SecurityLogger

	entries  sync.Map
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(client *goredis.Client, audit *security.SecurityLogger) *RateLimiter {
	rl := &RateLimiter{client: client, audit: audit, stop: make(chan struct{})}
	go rl.cleanup(5 * time.Minute)
	return rl
}

// Close stops the background cleanup of expired in-memory entries.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.entries.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rl.entries.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}
}

// Middleware enforces config on the routes it is attached to.
func (rl *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		count, resetAt, err := rl.hit(c.Request.Context(), key, config)
		if err != nil {
			rl.audit.Log(c.Request.Context(), security.SecurityEvent{
				Event:       security.EventRateLimitTriggered,
				SubjectType: "system",
				IP:          c.ClientIP(),
				RequestID:   c.GetString(string(domain.KeyRequestID)),
				Details:     map[string]interface{}{"error_type": "redis_error", "error": err.Error()},
			})
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			count, resetAt = rl.hitInMemory(key, config, time.Now())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			rl.audit.LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				c.GetString(string(domain.KeyRequestID)),
				c.FullPath(),
			)
			_ = c.Error(apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func (rl *RateLimiter) hit(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	if rl.client == nil {
		count, resetAt := rl.hitInMemory(key, config, time.Now())
		return count, resetAt, nil
	}

	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}
	result, err := rl.client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
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

func (rl *RateLimiter) hitInMemory(key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := rl.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}
