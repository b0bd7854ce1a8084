package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/errors"
)

// runCommand executes the CLI with the given args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		// Flag values survive Execute; reset so runs stay independent.
		_ = rootCmd.PersistentFlags().Set("format", "text")
		_ = rootCmd.PersistentFlags().Set("api-url", "")
		_ = rootCmd.PersistentFlags().Set("verbose", "false")
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCommandRegistration(t *testing.T) {
	expected := []string{
		"auth", "points", "collaborators", "rewards", "transactions",
		"report", "company", "profile", "dashboard", "version",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("GESTAO_HOME", t.TempDir())

	out, err := runCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestAuthStatusWithoutSession(t *testing.T) {
	t.Setenv("GESTAO_HOME", t.TempDir())

	out, err := runCommand(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in.")
}

func TestAuthStatusJSONWithoutSession(t *testing.T) {
	t.Setenv("GESTAO_HOME", t.TempDir())

	out, err := runCommand(t, "auth", "status", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "unauthenticated"`)
}

func TestAuthLogoutRemovesCredentialFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GESTAO_HOME", home)

	credFile := filepath.Join(home, "credentials.json")
	require.NoError(t, os.WriteFile(credFile, []byte(`{"token":"tok-abc"}`), 0o600))

	out, err := runCommand(t, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")

	_, statErr := os.Stat(credFile)
	assert.True(t, os.IsNotExist(statErr), "credential file should be removed")

	// Logging out again is a no-op with the same end state.
	_, err = runCommand(t, "auth", "logout")
	require.NoError(t, err)
}

func TestAuthenticatedCommandWithoutSession(t *testing.T) {
	t.Setenv("GESTAO_HOME", t.TempDir())

	_, err := runCommand(t, "transactions")
	require.Error(t, err)

	var gerr *errors.GestaoError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, errors.ErrCodeNotAuthenticated, gerr.Code)
}

func TestCodeForMapsGatewayErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *api.Error
		want errors.ErrorCode
	}{
		{"timeout", &api.Error{IsTimeout: true}, errors.ErrCodeTimeout},
		{"network", &api.Error{IsNetwork: true}, errors.ErrCodeNetworkFailure},
		{"401", &api.Error{Status: 401}, errors.ErrCodeSessionExpired},
		{"403", &api.Error{Status: 403}, errors.ErrCodeForbidden},
		{"429", &api.Error{Status: 429}, errors.ErrCodeRateLimited},
		{"500", &api.Error{Status: 500}, errors.ErrCodeServerError},
		{"422", &api.Error{Status: 422}, errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeFor(tt.err))
		})
	}
}

func TestRenderErrorUsesUserMessage(t *testing.T) {
	apiErr := &api.Error{Status: 500, Detail: "stack trace goes here", UserMessage: "Server error. Try again later."}

	rendered := renderError(apiErr)

	var gerr *errors.GestaoError
	require.ErrorAs(t, rendered, &gerr)
	assert.Equal(t, "Server error. Try again later.", gerr.Message)
	assert.NotContains(t, gerr.Error(), "stack trace goes here")
}

func TestRenderErrorPassesThroughTypedErrors(t *testing.T) {
	err := errors.NewAccessDeniedError("CLIENT")
	assert.Equal(t, err, renderError(err))
}
