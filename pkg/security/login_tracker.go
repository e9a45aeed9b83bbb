package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before a block
	AttemptWindow time.Duration // how long a failure counts
	BlockDuration time.Duration // how long a block lasts
	UseIPTracking bool          // also count and block by client IP
}

func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
		UseIPTracking: true,
	}
}

const (
	failLoginUserPrefix    = "fail:login:user:"
	failLoginIPPrefix      = "fail:login:ip:"
	blockedLoginUserPrefix = "blocked:login:user:"
	blockedLoginIPPrefix   = "blocked:login:ip:"
)

// KEYS[1] = counter key, ARGV[1] = TTL seconds. Returns the new count.
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// LoginTracker counts failed logins in Redis and blocks an email (and its
// IP) once MaxAttempts is reached. With no Redis client it fails open.
type LoginTracker struct {
	client goredis.UniversalClient
	config LoginTrackerConfig
	logger *SecurityLogger
}

var _ domain.LoginGuard = (*LoginTracker)(nil)

func NewLoginTracker(client goredis.UniversalClient, config LoginTrackerConfig, logger *SecurityLogger) *LoginTracker {
	if logger == nil {
		logger = NewNopSecurityLogger()
	}
	return &LoginTracker{client: client, config: config, logger: logger}
}

func (lt *LoginTracker) available() bool {
	return lt != nil && lt.client != nil
}

func (lt *LoginTracker) IsBlocked(ctx context.Context, email, ip string) (bool, error) {
	if !lt.available() {
		return false, nil
	}

	keys := []string{blockedLoginUserPrefix + email}
	if lt.config.UseIPTracking && ip != "" {
		keys = append(keys, blockedLoginIPPrefix+ip)
	}
	exists, err := lt.client.Exists(ctx, keys...).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check login block: %w", err)
	}
	if exists > 0 {
		lt.logger.LogLoginBlocked(ctx, email, ip, "")
		return true, nil
	}
	return false, nil
}

// RecordFailedAttempt counts one failure and reports whether the email is
// now blocked.
func (lt *LoginTracker) RecordFailedAttempt(ctx context.Context, email string, meta domain.ClientMeta) (bool, error) {
	lt.logger.LogLoginFailed(ctx, email, meta.IP, meta.UserAgent, meta.RequestID, "invalid_credentials")
	if !lt.available() {
		return false, nil
	}

	ttlSeconds := int(lt.config.AttemptWindow.Seconds())
	count, err := lt.increment(ctx, failLoginUserPrefix+email, ttlSeconds)
	if err != nil {
		return false, fmt.Errorf("failed to increment user counter: %w", err)
	}
	if lt.config.UseIPTracking && meta.IP != "" {
		_, _ = lt.increment(ctx, failLoginIPPrefix+meta.IP, ttlSeconds)
	}

	if count < lt.config.MaxAttempts {
		return false, nil
	}
	if err := lt.block(ctx, email, meta); err != nil {
		return true, err
	}
	return true, nil
}

// ClearAttempts is called after a successful login and resets the failure
// counters.
func (lt *LoginTracker) ClearAttempts(ctx context.Context, email, ip string) error {
	lt.logger.LogLoginSuccess(ctx, email, ip)
	if !lt.available() {
		return nil
	}
	keys := []string{failLoginUserPrefix + email}
	if lt.config.UseIPTracking && ip != "" {
		keys = append(keys, failLoginIPPrefix+ip)
	}
	if err := lt.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear login attempts: %w", err)
	}
	return nil
}

func (lt *LoginTracker) increment(ctx context.Context, key string, ttlSeconds int) (int, error) {
	result, err := lt.client.Eval(ctx, incrWithTTLScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, err
	}
	count, ok := result.(int64)
	if !ok {
		return 0, errors.New("unexpected result type from Lua script")
	}
	return int(count), nil
}

func (lt *LoginTracker) block(ctx context.Context, email string, meta domain.ClientMeta) error {
	ttl := lt.config.BlockDuration
	if err := lt.client.Set(ctx, blockedLoginUserPrefix+email, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to set user block: %w", err)
	}
	if lt.config.UseIPTracking && meta.IP != "" {
		if err := lt.client.Set(ctx, blockedLoginIPPrefix+meta.IP, "1", ttl).Err(); err != nil {
			lt.logger.zapLogger.Warn("failed to set IP block", zap.Error(err))
		}
	}
	lt.logger.LogBlockCreated(ctx, email, meta.IP, meta.RequestID, ttl)
	return nil
}
