package middleware

import (
	"strings"

	"postboard/internal/delivery/api/response"
	deliverycontext "postboard/internal/delivery/context"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "bearer "

// AuthMiddleware resolves bearer tokens to users for protected route groups.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request with 401 unless the Authorization header carries a bearer token of an active user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
