package ports

import "context"

// LoginThrottle limits failed login attempts per email within a rolling
// window. It is an abuse control only; it never affects issued tokens.
type LoginThrottle interface {
	// Allow reports whether another attempt for email may proceed.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure registers a failed attempt for email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
