package api

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages derived from response status. Centralized here so
// screens and commands never interpret status codes themselves.
const (
	msgTimeout       = "Connection timed out. Check your network and try again."
	msgNetwork       = "Could not reach the server. Check your network connection."
	msgSessionGone   = "Session expired. Please sign in again."
	msgAdminOnly     = "Access restricted to administrators."
	msgRateLimited   = "Too many requests. Try again in a few moments."
	msgServerFailure = "Server error. Try again later."
	msgGeneric       = "The request could not be completed."
)

// Error is the normalized shape for every failed gateway call. It carries
// both what the backend said (Status, Detail) and what the user should see
// (UserMessage). The gateway never returns a raw transport error.
type Error struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Detail is the backend-supplied detail message, if any.
	Detail string

	// UserMessage is the message suitable for direct display.
	UserMessage string

	// IsNetwork is true when no HTTP response was received at all.
	IsNetwork bool

	// IsTimeout is true when the request exceeded the client timeout.
	IsTimeout bool

	// Cause is the underlying transport error, if any.
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.IsTimeout:
		return fmt.Sprintf("request timed out: %v", e.Cause)
	case e.IsNetwork:
		return fmt.Sprintf("network failure: %v", e.Cause)
	case e.Detail != "":
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Detail)
	default:
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Unauthorized reports whether the call was rejected with 401.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Retryable reports whether the caller may reasonably retry the request
// without changing it. Backoff is left to the caller.
func (e *Error) Retryable() bool {
	return e.IsNetwork || e.IsTimeout ||
		e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// userMessage derives the display message for a failed response.
// Precedence: timeout, no response, 401, 403, 429, 5xx, backend detail.
func userMessage(status int, detail string, isNetwork, isTimeout bool) string {
	switch {
	case isTimeout:
		return msgTimeout
	case isNetwork:
		return msgNetwork
	case status == http.StatusUnauthorized:
		return msgSessionGone
	case status == http.StatusForbidden:
		return msgAdminOnly
	case status == http.StatusTooManyRequests:
		return msgRateLimited
	case status >= 500:
		return msgServerFailure
	case detail != "":
		return detail
	default:
		return msgGeneric
	}
}

// AsError extracts a gateway *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
