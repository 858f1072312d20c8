package errors

import (
	"net/http"
	"testing"

	"postboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrReactionConflict.WrapMessage("like record already exists")

	assert.True(t, errors.Is(err, ErrReactionConflict))
	assert.Equal(t, "like record already exists: the reaction could not be applied, please try again", err.Error())

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "REACTION_CONFLICT", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("text is required")

	assert.Equal(t, "text is required", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create post")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create post", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
