package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/api/handler"
	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

// RequireSession rejects requests without a current session and injects the
// session user and role into context.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := sessions.Current(c.Request().Context())
			if !ok {
				return domain.ErrNoSession
			}

			c.Set(handler.ContextUserKey, user)
			c.Set(handler.ContextRoleKey, string(user.Role))

			return next(c)
		}
	}
}
