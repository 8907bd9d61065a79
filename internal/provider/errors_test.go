package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchByCode(t *testing.T) {
	err := &Error{
		Code:     ErrCodeEmptyResponse,
		Message:  "blank",
		Provider: "openai",
	}

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}

func TestError_MatchThroughWrapping(t *testing.T) {
	inner := &Error{Code: ErrCodeRequestFailed, Provider: "openai", Message: "boom"}
	wrapped := fmt.Errorf("review failed: %w", inner)

	assert.ErrorIs(t, wrapped, ErrRequestFailed)

	var pe *Error
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "openai", pe.Provider)
}

func TestError_Message(t *testing.T) {
	withStatus := &Error{
		Code:       ErrCodeRequestFailed,
		Message:    "upstream exploded",
		Provider:   "openai",
		StatusCode: 503,
	}
	assert.Contains(t, withStatus.Error(), "status 503")
	assert.Contains(t, withStatus.Error(), "openai")

	withCause := &Error{
		Code:     ErrCodeInvalidJSON,
		Message:  "bad payload",
		Provider: "openai",
		Cause:    errors.New("unexpected end of JSON input"),
	}
	assert.Contains(t, withCause.Error(), "unexpected end of JSON input")
	assert.ErrorIs(t, withCause, withCause.Cause, "Unwrap should expose the cause")
}
