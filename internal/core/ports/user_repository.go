package ports

import (
	"context"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Implementations must enforce email uniqueness themselves (unique index)
// and return domain.ErrEmailExists on violation: the service-level pre-check
// is only an optimization and can race.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail, FindByIDWithRole and FindAll return users with the role
	// reference joined; FindByID does not.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDWithRole(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UserUpdate is the storage-level form of a profile patch: the password has
// already been hashed by the service. Nil fields are left untouched.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	RoleID       *int
}

// RoleRepository provides read access to the seeded role reference data.
type RoleRepository interface {
	ExistsByID(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*domain.Role, error)
}
