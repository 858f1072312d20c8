package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_KeepsCause(t *testing.T) {
	wrapped := Wrap(Wrap(errSentinel, "inner"), "outer")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "outer: inner: sentinel", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestWithStack_PrintsFrames(t *testing.T) {
	err := WithStack(errSentinel)

	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs_FindsTypedError(t *testing.T) {
	err := Wrapf(&codedError{code: 409}, "toggle %s", "like")

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 409, target.code)
}
