package ports

import (
	"context"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

// AuthResult is returned by the credential flows: a signed session token
// plus the account it identifies (with role joined).
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService orchestrates registration, login and user management.
type AuthService interface {
	Register(ctx context.Context, email, password string, roleID int) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Remove(ctx context.Context, id string) error
}

// Claims is the identity payload embedded in a session token. It reflects
// the account state at issuance time; authorization decisions are made from
// it without a live lookup.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies stateless signed session tokens.
// Expiry is the only invalidation mechanism: there is no revocation list.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*Claims, error)
}

// PasswordHasher is a one-way salted transform for credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A mismatch is
	// (false, nil); an error means the digest itself is unreadable.
	Verify(plaintext, digest string) (bool, error)
}
