package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("finds code through wrapping", func(t *testing.T) {
		base := New(CodeConflict, "duplicate report")
		wrapped := fmt.Errorf("save: %w", base)
		assert.True(t, HasCode(wrapped, CodeConflict))
		assert.False(t, HasCode(wrapped, CodeNotFound))
	})

	t.Run("finds inner code of nested coded errors", func(t *testing.T) {
		inner := New(CodeLocked, "report is locked")
		outer := Wrap(inner, CodeInternal, "update failed")
		assert.True(t, HasCode(outer, CodeLocked))
		assert.True(t, HasCode(outer, CodeInternal))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrapAndCodeOf(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "failed to load report")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Equal(t, "failed to load report: connection reset", err.Error())
	assert.Equal(t, "failed to load report", Message(err))

	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("untyped")))
}
