package middleware

import (
	"fmt"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/api/handler"
	"github.com/99minutos/cms-console/internal/core/domain"
)

// RBAC lets the request through only when the session role is one of roles.
// Run it after RequireSession; a request with no role is refused.
func RBAC(roles ...domain.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(handler.ContextRoleKey).(string)
			if !slices.Contains(roles, domain.UserRole(role)) {
				return fmt.Errorf("role %q on %s %s: %w", role, c.Request().Method, c.Path(), domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
