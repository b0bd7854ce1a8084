package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/fidelizaplus/gestao/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// NetworkError indicates a network connectivity issue
	NetworkError = 4

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var gerr *errors.GestaoError
	if stderrors.As(err, &gerr) {
		switch gerr.Code {
		case errors.ErrCodeInvalidCredentials,
			errors.ErrCodeAccessDenied,
			errors.ErrCodeSessionExpired,
			errors.ErrCodeNotAuthenticated,
			errors.ErrCodeForbidden:
			return AuthError
		case errors.ErrCodeNetworkFailure, errors.ErrCodeTimeout:
			return NetworkError
		}
		return GeneralError
	}

	// Fall back to message sniffing for errors raised outside this module
	// (cobra flag errors and the like).
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "authentication") {
		return AuthError
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "connection") ||
		strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") ||
		strings.Contains(errMsg, "required flag") {
		return UsageError
	}

	return GeneralError
}
