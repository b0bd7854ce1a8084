package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAccessDenied       ErrorCode = "AUTH-002"
	ErrCodeSessionExpired     ErrorCode = "AUTH-003"
	ErrCodeNotAuthenticated   ErrorCode = "AUTH-004"

	// Gateway / transport errors (API-001 to API-099)
	ErrCodeNetworkFailure ErrorCode = "API-001"
	ErrCodeTimeout        ErrorCode = "API-002"
	ErrCodeServerError    ErrorCode = "API-003"
	ErrCodeRateLimited    ErrorCode = "API-004"
	ErrCodeValidation     ErrorCode = "API-005"
	ErrCodeForbidden      ErrorCode = "API-006"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigLoad  ErrorCode = "CONFIG-001"
	ErrCodeConfigParse ErrorCode = "CONFIG-002"

	// Credential storage errors (CRED-001 to CRED-099)
	ErrCodeCredentialRead  ErrorCode = "CRED-001"
	ErrCodeCredentialWrite ErrorCode = "CRED-002"
)

// GestaoError represents an enhanced error with code, suggestions, and documentation
type GestaoError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *GestaoError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *GestaoError) Unwrap() error {
	return e.Cause
}

// New creates a new GestaoError
func New(code ErrorCode, message string) *GestaoError {
	return &GestaoError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new GestaoError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *GestaoError {
	return &GestaoError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *GestaoError) WithSuggestion(suggestion string) *GestaoError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *GestaoError) WithSuggestions(suggestions ...string) *GestaoError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *GestaoError) WithDocs(url string) *GestaoError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates a sign-in rejection error (401 on /token)
func NewInvalidCredentialsError(cause error) *GestaoError {
	return Wrap(ErrCodeInvalidCredentials, "invalid email or password", cause).
		WithSuggestion("Check the email address and password and try again").
		WithSuggestion("Use 'gestao auth forgot-password' if you no longer know your password")
}

// NewAccessDeniedError creates a disallowed-role error. The backend
// authenticated the account, but it is not an admin or collaborator account.
func NewAccessDeniedError(userType string) *GestaoError {
	return New(ErrCodeAccessDenied, fmt.Sprintf("access denied for account type: %s", userType)).
		WithSuggestion("This application is for Fideliza+ partners only").
		WithSuggestion("Sign in with an admin or collaborator account")
}

// NewSessionExpiredError creates a session invalidation error (401 on an
// authenticated call)
func NewSessionExpiredError(cause error) *GestaoError {
	return Wrap(ErrCodeSessionExpired, "session expired", cause).
		WithSuggestion("Run 'gestao auth login' to sign in again")
}

// NewNotAuthenticatedError creates a missing-session error
func NewNotAuthenticatedError() *GestaoError {
	return New(ErrCodeNotAuthenticated, "not logged in").
		WithSuggestion("Run 'gestao auth login' to sign in")
}

// NewCredentialReadError creates a credential load error
func NewCredentialReadError(path string, cause error) *GestaoError {
	return Wrap(ErrCodeCredentialRead, fmt.Sprintf("failed to read stored credentials: %s", path), cause).
		WithSuggestion("Run 'gestao auth login' to create fresh credentials")
}

// NewCredentialWriteError creates a credential save error
func NewCredentialWriteError(path string, cause error) *GestaoError {
	return Wrap(ErrCodeCredentialWrite, fmt.Sprintf("failed to save credentials: %s", path), cause).
		WithSuggestion("Check that the directory exists and is writable")
}

// NewConfigLoadError creates a configuration load error
func NewConfigLoadError(path string, cause error) *GestaoError {
	return Wrap(ErrCodeConfigLoad, fmt.Sprintf("failed to load configuration: %s", path), cause).
		WithSuggestion("Check that the file exists and is readable")
}

// NewConfigParseError creates a configuration parse error
func NewConfigParseError(path string, cause error) *GestaoError {
	return Wrap(ErrCodeConfigParse, fmt.Sprintf("failed to parse configuration: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the config file")
}
