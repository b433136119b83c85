package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // Maximum failed attempts before block (default: 5)
	AttemptWindow time.Duration // Time window for tracking attempts (default: 15min)
	BlockDuration time.Duration // How long to block after max attempts (default: 15min)
}

// DefaultLoginTrackerConfig returns sensible defaults
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed logins per actor type and normalised email and
// blocks further attempts once the limit is reached. With a nil client every
// call is a no-op that never blocks.
type LoginTracker struct {
	client *goredis.Client
	config LoginTrackerConfig
	logger *SecurityLogger
}

func NewLoginTracker(client *goredis.Client, config LoginTrackerConfig, logger *SecurityLogger) *LoginTracker {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLoginTrackerConfig().MaxAttempts
	}
	if config.AttemptWindow <= 0 {
		config.AttemptWindow = DefaultLoginTrackerConfig().AttemptWindow
	}
	if config.BlockDuration <= 0 {
		config.BlockDuration = DefaultLoginTrackerConfig().BlockDuration
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &LoginTracker{client: client, config: config, logger: logger}
}

// Redis key patterns
const (
	failLoginPrefix    = "fail:login:"
	blockedLoginPrefix = "blocked:login:"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: current count after increment
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func subjectKey(actorType, email string) string {
	return actorType + ":" + strings.ToLower(strings.TrimSpace(email))
}

// IsBlocked reports whether logins for the subject are currently blocked.
func (lt *LoginTracker) IsBlocked(ctx context.Context, actorType, email string) (bool, error) {
	if lt.client == nil {
		return false, nil
	}

	exists, err := lt.client.Exists(ctx, blockedLoginPrefix+subjectKey(actorType, email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check login block: %w", err)
	}
	return exists > 0, nil
}

// RecordFailure counts a failed attempt and reports whether it created a block.
func (lt *LoginTracker) RecordFailure(ctx context.Context, actorType, email string) (bool, error) {
	if lt.client == nil {
		return false, nil
	}

	key := subjectKey(actorType, email)
	count, err := lt.atomicIncrement(ctx, failLoginPrefix+key, int(lt.config.AttemptWindow.Seconds()))
	if err != nil {
		return false, fmt.Errorf("failed to increment login counter: %w", err)
	}

	if count < lt.config.MaxAttempts {
		return false, nil
	}

	if err := lt.client.Set(ctx, blockedLoginPrefix+key, "1", lt.config.BlockDuration).Err(); err != nil {
		return false, fmt.Errorf("failed to set login block: %w", err)
	}
	lt.logger.LogBlockCreated(ctx, "email", strings.ToLower(strings.TrimSpace(email)), "", int(lt.config.BlockDuration.Minutes()))
	return true, nil
}

func (lt *LoginTracker) atomicIncrement(ctx context.Context, key string, ttlSeconds int) (int, error) {
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

// Clear resets the failure counter after a successful login.
func (lt *LoginTracker) Clear(ctx context.Context, actorType, email string) error {
	if lt.client == nil {
		return nil
	}
	if err := lt.client.Del(ctx, failLoginPrefix+subjectKey(actorType, email)).Err(); err != nil {
		return fmt.Errorf("failed to clear login attempts: %w", err)
	}
	return nil
}

// RemainingAttempts returns how many attempts remain before a block.
func (lt *LoginTracker) RemainingAttempts(ctx context.Context, actorType, email string) (int, error) {
	if lt.client == nil {
		return lt.config.MaxAttempts, nil
	}

	count, err := lt.client.Get(ctx, failLoginPrefix+subjectKey(actorType, email)).Int()
	if errors.Is(err, goredis.Nil) {
		return lt.config.MaxAttempts, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get attempt count: %w", err)
	}

	remaining := lt.config.MaxAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
