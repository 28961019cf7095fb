package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heshamadeldwedar/Flapkap/internal/api/metrics"
	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
	"github.com/heshamadeldwedar/Flapkap/internal/core/ports"
)

// AuthHandler serves registration, login and the profile endpoint.
type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle // optional, nil disables throttling
}

func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   int    `json:"role_id" validate:"required,oneof=1 2"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        userSummary `json:"user"`
}

func summarize(u *domain.User) userSummary {
	return userSummary{ID: u.ID, Email: u.Email, Role: u.RoleName()}
}

// Register creates a new user account and returns a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.RoleID)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(result.User.RoleName()).Inc()

	return c.JSON(http.StatusCreated, authResponse{
		AccessToken: result.Token,
		User:        summarize(result.User),
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		ok, err := h.throttle.Allow(ctx, req.Email)
		if err != nil {
			return err
		}
		if !ok {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return domain.ErrTooManyAttempts
		}
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			if h.throttle != nil {
				_ = h.throttle.RecordFailure(ctx, req.Email)
			}
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	if h.throttle != nil {
		_ = h.throttle.Reset(ctx, req.Email)
	}

	return c.JSON(http.StatusOK, authResponse{
		AccessToken: result.Token,
		User:        summarize(result.User),
	})
}

// Profile returns the current state of the authenticated user. Claims only
// identify the account; the data itself is re-fetched for freshness.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userSummary
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summarize(user))
}
