package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("collision"), "rename the target")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "rename the target", hints[0])
}

func TestIsHashFailure(t *testing.T) {
	cause := fmt.Errorf("disk on fire")

	assert.True(t, IsHashFailure(Mark(Wrap(cause, "hashing accessor"), ErrHashFailed)))
	assert.True(t, IsHashFailure(Wrap(ErrHashFailed, "target Kit")))
	assert.False(t, IsHashFailure(cause))
	assert.False(t, IsHashFailure(nil))
}

func TestIsNameCollision(t *testing.T) {
	err := Wrapf(ErrTargetNameCollision, "target %q", "App_Kit")

	assert.True(t, IsNameCollision(err))
	assert.False(t, IsNameCollision(ErrHashFailed))
	assert.False(t, IsNameCollision(nil))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(Wrap(ErrNotFound, ".tuist-version")))
	assert.False(t, IsNotFoundError(ErrOutOfDate))
	assert.False(t, IsNotFoundError(nil))
}
