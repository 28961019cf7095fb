package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heshamadeldwedar/Flapkap/internal/core/domain"
)

// Authorize enforces the role policy for op. It must run after Authenticate:
// a request that never presented a token is rejected there with 401, so a
// 403 from here always means "authenticated but insufficient role".
func Authorize(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !domain.OperationAllowed(role, op) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
