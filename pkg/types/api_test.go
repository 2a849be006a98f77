package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := NotFound("node %q not found", "/cam_i2cmux")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)

	wrapped := fmt.Errorf("patch sdcard: %w", err)
	require.ErrorIs(t, wrapped, ErrNotFound)

	var te *Error
	require.ErrorAs(t, wrapped, &te)
	assert.Equal(t, ErrKindNotFound, te.Kind)
}

func TestError_MessageIncludesCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &Error{Kind: ErrKindExternal, Msg: "dtc failed", Err: cause}
	assert.Equal(t, "dtc failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrExternal)
}

func TestError_Nil(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
	assert.False(t, e.Is(ErrMalformed))
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "malformed", ErrKindMalformed.String())
	assert.Equal(t, "not found", ErrKindNotFound.String())
	assert.Equal(t, "ErrKind(42)", ErrKind(42).String())
}
