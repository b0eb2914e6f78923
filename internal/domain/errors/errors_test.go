package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrInsufficientBalance.WrapMessage("debit order total")

	assert.ErrorIs(t, wrapped, ErrInsufficientBalance)

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_BALANCE", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("amount must be positive")

	assert.Equal(t, "amount must be positive", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrInvalidAmount)
}

func TestUpstreamError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.WithStack(NewUpstreamError(cause, "find user"))

	assert.True(t, IsUpstreamUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsUpstreamUnavailable(ErrUserNotFound))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, "find user", appErr.Details())
}
