// Package apperrors holds the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks a missing or malformed required field.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrStoreUnavailable marks a failure to reach the persistence backend.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrGenerationFailed marks a failed or unusable generative backend call.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrConflict marks a save against a transcript that changed since it was loaded.
	ErrConflict = errors.New("transcript version conflict")
)

// InvalidRequest returns an ErrInvalidRequest carrying a client-facing message.
func InvalidRequest(message string) error {
	return &RequestError{Message: message}
}

// StoreUnavailable wraps cause as ErrStoreUnavailable.
func StoreUnavailable(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, cause)
}

// GenerationFailed wraps cause as ErrGenerationFailed.
func GenerationFailed(cause error) error {
	return fmt.Errorf("%w: %w", ErrGenerationFailed, cause)
}

// Conflict reports a stale transcript version for userID.
func Conflict(userID string, expected int64) error {
	return fmt.Errorf("%w: user %q at version %d", ErrConflict, userID, expected)
}

// RequestError is an ErrInvalidRequest whose Message is safe to return to clients.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, e.Message)
}

func (e *RequestError) Unwrap() error { return ErrInvalidRequest }

// ClientMessage returns the client-safe message of an invalid-request error.
func ClientMessage(err error) (string, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message, true
	}
	return "", false
}
