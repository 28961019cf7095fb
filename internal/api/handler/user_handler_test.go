package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

func sellerUser() *domain.User {
	return &domain.User{
		ID:     "user-2",
		Email:  "b@x.com",
		RoleID: domain.RoleIDSeller,
		Role:   &domain.Role{ID: domain.RoleIDSeller, Name: domain.RoleSeller},
	}
}

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{*buyerUser(), *sellerUser()}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
	if _, leaked := out[0]["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		profileFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, _ := newJSONContext(t, http.MethodGet, "/users/user-404", "")
	c.SetParamNames("id")
	c.SetParamValues("user-404")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		updateFn: func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
			if id != "user-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if patch.Email == nil || *patch.Email != "new@x.com" {
				t.Fatalf("email patch not forwarded: %+v", patch)
			}
			if patch.Password != nil || patch.RoleID != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			u := buyerUser()
			u.Email = *patch.Email
			return u, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPut, "/users/user-1", `{"email":"new@x.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_ValidationRejects(t *testing.T) {
	h := NewUserHandler(&stubAuthService{
		updateFn: func(context.Context, string, domain.UserPatch) (*domain.User, error) {
			t.Fatalf("service must not be called for invalid payloads")
			return nil, nil
		},
	})

	bad := []string{
		`{"email":"nope"}`,
		`{"password":"short"}`,
		`{"role_id":3}`,
	}
	for _, body := range bad {
		c, _ := newJSONContext(t, http.MethodPut, "/users/user-1", body)
		c.SetParamNames("id")
		c.SetParamValues("user-1")

		err := h.Update(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %v", body, err)
		}
	}
}

func TestUserHandler_Delete(t *testing.T) {
	removed := ""
	h := NewUserHandler(&stubAuthService{
		removeFn: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodDelete, "/users/user-1", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if removed != "user-1" {
		t.Fatalf("unexpected id removed: %s", removed)
	}
}
