package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUser_VisibleFromBothContexts(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	_, ok := GetUser(c)
	assert.False(t, ok)

	SetUser(c, user)

	got, ok := GetUser(c)
	require.True(t, ok)
	assert.Same(t, user, got)

	fromCtx, ok := UserFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Same(t, user, fromCtx)
}

func TestUserFromContext_TypedNil(t *testing.T) {
	ctx := WithUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), nil)

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)
}
