package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heshamadeldwedar/Flapkap/internal/api/middleware"
)

// ctxUserID extracts the subject claim injected by the Authenticate
// middleware. An empty value means the guard never ran for this route,
// which is a wiring bug surfaced as 401 rather than a panic downstream.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
