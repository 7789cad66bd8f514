package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "user"

// Auth resolves the bearer credential and injects the authenticated user into
// the echo context. Resolution failures surface as domain errors and are
// rendered by the central error handler.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolver.Resolve(
				c.Request().Context(),
				c.Request().Header.Get(echo.HeaderAuthorization),
			)
			if err != nil {
				return err
			}
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
