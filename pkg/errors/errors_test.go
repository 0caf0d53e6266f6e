// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "discovery_error",
			code:    errors.ErrDiscovery,
			message: "no units found",
			wantStr: "[DISCOVERY] no units found",
		},
		{
			name:    "precondition_error",
			code:    errors.ErrPrecondition,
			message: "cannot chmod missing file",
			wantStr: "[PRECONDITION] cannot chmod missing file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "unit %s has %d problems", "editor", 2)
	assert.Equal(t, "unit editor has 2 problems", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrActionExecute, "apply failed")

		assert.Equal(t, errors.ErrActionExecute, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[ACTION_EXECUTE] apply failed: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrPrecondition, "missing"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrPrecondition, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrDiscovery, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrecondition))
	assert.Equal(t, errors.ErrPrecondition, errors.GetErrorCode(err))
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDiscovery, "missing").
		WithDetail("path", "/tmp/x").
		WithDetail("count", 0)

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/tmp/x", details["path"])
	assert.Equal(t, 0, details["count"])
}
