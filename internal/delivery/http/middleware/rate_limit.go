package middleware

import (
	"context"
	"fmt"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit      int           // requests per window
	Window     time.Duration // window length
	KeyPrefix  string        // Redis key prefix
	FailClosed bool          // reject with 503 when Redis errors
	KeyFunc    func(*gin.Context) string
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:ip:", KeyFunc: clientIP}
}

// AuthRateLimitConfig applies to the credential endpoints.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:auth:", FailClosed: true, KeyFunc: clientIP}
}

// KEYS[1] = counter key, ARGV[1] = TTL seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests in Redis when a client is configured and in
// per-key token buckets otherwise.
type RateLimiter struct {
	client goredis.UniversalClient
	logger *security.SecurityLogger

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

func NewRateLimiter(client goredis.UniversalClient, logger *security.SecurityLogger) *RateLimiter {
	if logger == nil {
		logger = security.NewNopSecurityLogger()
	}
	return &RateLimiter{client: client, logger: logger, local: make(map[string]*rate.Limiter)}
}

// Middleware enforces config on every request it sees.
func (rl *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Limit <= 0 {
			c.Next()
			return
		}

		key := config.KeyPrefix + config.KeyFunc(c)
		allowed, remaining, resetAt, err := rl.allow(c.Request.Context(), key, config)
		if err != nil {
			rl.logger.Log(c.Request.Context(), security.SecurityEvent{
				Event:       security.EventRateLimitTriggered,
				SubjectType: "system",
				IP:          c.ClientIP(),
				RequestID:   response.RequestID(c),
				Details:     map[string]interface{}{"error_type": "redis_error", "error": err.Error()},
			})
			if config.FailClosed {
				c.Error(apperror.New(http.StatusServiceUnavailable, apperror.KindInternal, "Service temporarily unavailable. Please try again.", nil))
				c.Abort()
				return
			}
			allowed, remaining, resetAt = rl.allowLocal(key, config)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			rl.logger.LogRateLimitTriggered(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), response.RequestID(c), c.FullPath())
			c.Error(apperror.TooManyRequests("Rate limit exceeded. Please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string, config RateLimitConfig) (bool, int, time.Time, error) {
	if rl.client == nil {
		allowed, remaining, resetAt := rl.allowLocal(key, config)
		return allowed, remaining, resetAt, nil
	}

	result, err := rl.client.Eval(ctx, rateLimitLuaScript, []string{key}, int(config.Window.Seconds())).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return false, 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	remaining := config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= config.Limit, remaining, time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// allowLocal refills Limit tokens per Window with a burst of Limit.
func (rl *RateLimiter) allowLocal(key string, config RateLimitConfig) (bool, int, time.Time) {
	rl.mu.Lock()
	lim, ok := rl.local[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(config.Window/time.Duration(config.Limit)), config.Limit)
		rl.local[key] = lim
	}
	rl.mu.Unlock()

	now := time.Now()
	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}
	resetAt := now
	if tokens < 1 {
		resetAt = now.Add(time.Duration((1 - tokens) * float64(config.Window) / float64(config.Limit)))
	}
	return allowed, remaining, resetAt
}
