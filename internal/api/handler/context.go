package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. A
// missing or mistyped value means the middleware did not run on this route;
// fail closed rather than proceed without an identity.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
