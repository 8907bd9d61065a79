package provider

import "fmt"

// ErrorCode classifies failures across the request/response cycle so the
// caller can decide how to react (abort, degrade, surface) without
// inspecting provider-specific payloads.
type ErrorCode string

const (
	// ErrCodeInvalidRequest covers malformed outgoing requests (empty
	// message list, blank role or content).
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeConfiguration covers missing endpoint or API key.
	ErrCodeConfiguration ErrorCode = "configuration"

	// ErrCodeRequestFailed covers network and upstream HTTP failures.
	ErrCodeRequestFailed ErrorCode = "request_failed"

	// ErrCodeInvalidResponse means the expected content path was absent
	// from the provider response body.
	ErrCodeInvalidResponse ErrorCode = "invalid_response"

	// ErrCodeEmptyResponse means the extracted text was empty or
	// whitespace-only.
	ErrCodeEmptyResponse ErrorCode = "empty_response"

	// ErrCodeInvalidJSON means the model answered with text that could not
	// be decoded as the expected structured payload.
	ErrCodeInvalidJSON ErrorCode = "invalid_json"
)

// Error is a structured provider error carrying a normalized code plus the
// original provider-specific details. It implements the standard error
// interface and supports errors.Is / errors.As unwrapping.
type Error struct {
	Code       ErrorCode
	Message    string
	Provider   string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("[%s] %s: %s (status %d)", e.Provider, e.Code, e.Message, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("[%s] %s: %s: %v", e.Provider, e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("[%s] %s: %s", e.Provider, e.Code, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to match provider errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidRequest  = &Error{Code: ErrCodeInvalidRequest}
	ErrConfiguration   = &Error{Code: ErrCodeConfiguration}
	ErrRequestFailed   = &Error{Code: ErrCodeRequestFailed}
	ErrInvalidResponse = &Error{Code: ErrCodeInvalidResponse}
	ErrEmptyResponse   = &Error{Code: ErrCodeEmptyResponse}
	ErrInvalidJSON     = &Error{Code: ErrCodeInvalidJSON}
)
