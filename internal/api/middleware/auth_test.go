package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
	"github.com/heshamadeldwedar/Flapkap/internal/core/service"
)

func testUser() *domain.User {
	return &domain.User{
		ID:     "user-1",
		Email:  "a@x.com",
		RoleID: domain.RoleIDBuyer,
		Role:   &domain.Role{ID: domain.RoleIDBuyer, Name: domain.RoleBuyer},
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue(testUser())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "user-1" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxEmail) != "a@x.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != domain.RoleBuyer {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_BadScheme(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_TamperedAndExpiredLookAlike(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	other := service.NewTokenService("other", time.Hour)

	tampered, err := other.Issue(testUser())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error { return nil })

	for _, token := range []string{tampered, "not-even-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: expected 401, got %v", token, err)
		}
		// The rejection message must not reveal why the token failed.
		if he.Message != "unauthorized" {
			t.Fatalf("token %q: message leaks failure detail: %v", token, he.Message)
		}
	}
}
