package service

import (
	"errors"
	"testing"
	"time"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

func tokenTestUser() *domain.User {
	return &domain.User{
		ID:     "64f0c2a1b3d4e5f607080910",
		Email:  "a@x.com",
		RoleID: domain.RoleIDBuyer,
		Role:   &domain.Role{ID: domain.RoleIDBuyer, Name: domain.RoleBuyer},
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(tokenTestUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "64f0c2a1b3d4e5f607080910" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleBuyer {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue(tokenTestUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Still valid just before the TTL elapses.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(tokenTestUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
