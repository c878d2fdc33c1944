package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *DotstrapError
		expected string
	}{
		{
			name:     "error without wrapped",
			err:      New(ErrPrereqMissing, "homebrew not found"),
			expected: "[PREREQ_MISSING] homebrew not found",
		},
		{
			name:     "error with wrapped",
			err:      Wrap(fmt.Errorf("exit status 1"), ErrInstallFailed, "brew install failed"),
			expected: "[INSTALL_FAILED] brew install failed: exit status 1",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrCloneFailed, "cannot clone %s", "tpm"),
			expected: "[CLONE_FAILED] cannot clone tpm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should be %s", "nil"))
}

func TestErrorCodeMatching(t *testing.T) {
	inner := New(ErrLinkConflict, "stow reported conflicts")
	outer := Wrap(inner, ErrLinkFailed, "linking failed")

	assert.True(t, IsErrorCode(outer, ErrLinkFailed))
	assert.True(t, errors.Is(outer, New(ErrLinkFailed, "")))
	assert.True(t, errors.Is(outer, inner))
	assert.False(t, IsErrorCode(outer, ErrInstallFailed))

	assert.Equal(t, ErrLinkFailed, GetErrorCode(outer))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain error")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrLinkConflict, "conflicts detected").
		WithDetail("paths", []string{".zshrc"})

	require.NotNil(t, err.Details)
	assert.Equal(t, []string{".zshrc"}, err.Details["paths"])
}
