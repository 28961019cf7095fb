package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_attempts:<email>, expiring after the configured window.
// The counter is best-effort abuse control; it holds no token state.
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing limit failed attempts per
// window before Allow starts returning false.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow reports whether another attempt for email may proceed.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n < t.limit, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + email
}
