package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
	"github.com/heshamadeldwedar/Flapkap/internal/core/ports"
)

// AuthService implements registration, login and user management on top of
// the user/role repositories, the password hasher and the token service.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens}
}

// Register creates an account and immediately issues a session token.
// The email pre-check is an optimization only: two concurrent registrations
// with the same email both pass it, and the repository's unique constraint
// decides which one wins.
func (s *AuthService) Register(ctx context.Context, email, password string, roleID int) (*ports.AuthResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	created.Role = role

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates an email/password pair. An unknown email and a wrong
// password fail identically with ErrInvalidCredentials so callers cannot
// probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// GetProfile re-fetches the current account state. A valid token whose user
// has since been deleted yields ErrUserNotFound rather than stale claims.
func (s *AuthService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByIDWithRole(ctx, id)
}

// List returns all users with their roles joined.
func (s *AuthService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Update applies a partial profile change. All checks run before the single
// repository write, so a conflicting email or unknown role leaves the user
// untouched.
func (s *AuthService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := ports.UserUpdate{Email: patch.Email, RoleID: patch.RoleID}

	if patch.Email != nil && *patch.Email != user.Email {
		exists, err := s.users.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			return nil, domain.ErrEmailExists
		}
	}

	if patch.RoleID != nil {
		exists, err := s.roles.ExistsByID(ctx, *patch.RoleID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrRoleNotFound
		}
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	if _, err := s.users.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.users.FindByIDWithRole(ctx, id)
}

// Remove deletes an account after confirming it exists.
func (s *AuthService) Remove(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
