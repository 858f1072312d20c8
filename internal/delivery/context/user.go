package context

import (
	"context"

	"postboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser holds the user admitted by the auth gate.
const KeyUser ContextKey = "postboard.user"

// SetUser stores the authenticated user in both the echo.Context and the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUser returns the user stored by the auth gate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// UserFromContext extracts the authenticated user from context.Context.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyUser).(*entity.User)

	return user, ok && user != nil
}
