package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidRequest_IsAndMessage(t *testing.T) {
	err := InvalidRequest("User ID is required")

	assert.ErrorIs(t, err, ErrInvalidRequest)
	msg, ok := ClientMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "User ID is required", msg)
}

func TestStoreUnavailable_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := StoreUnavailable("load transcript", cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrGenerationFailed)
	_, ok := ClientMessage(err)
	assert.False(t, ok)
}

func TestGenerationFailedAndConflict(t *testing.T) {
	assert.ErrorIs(t, GenerationFailed(errors.New("timeout")), ErrGenerationFailed)
	assert.ErrorIs(t, Conflict("u1", 3), ErrConflict)
	assert.Contains(t, Conflict("u1", 3).Error(), `"u1"`)
}
