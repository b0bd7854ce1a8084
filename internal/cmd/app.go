package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/config"
	"github.com/fidelizaplus/gestao/internal/credential"
	"github.com/fidelizaplus/gestao/internal/errors"
	"github.com/fidelizaplus/gestao/internal/log"
	"github.com/fidelizaplus/gestao/internal/session"
	"github.com/fidelizaplus/gestao/internal/ux"
)

// App wires the configured gateway, credential store, and session store for
// one command invocation. The session store is the only component that
// mutates the credential file and the gateway token slot.
type App struct {
	Config  config.Config
	Logger  *log.Logger
	Gateway *api.Client
	Creds   *credential.Store
	Session *session.Store
}

// newApp builds the dependency graph from config, env, and flags.
func newApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
	})
	log.SetDefaultLogger(logger)

	gateway := api.NewClient(cfg.APIURL)
	gateway.SetTimeout(cfg.Timeout())
	gateway.SetLogger(logger)

	creds := credential.NewStore(cfg.Home)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Gateway: gateway,
		Creds:   creds,
		Session: session.NewStore(gateway, creds, logger),
	}, nil
}

// RequireSession restores the persisted session and fails with a typed
// error when none is available. Command bodies run only after bootstrap has
// settled.
func (a *App) RequireSession(ctx context.Context) (*api.User, error) {
	if a.Session.Bootstrap(ctx) != session.StatusAuthenticated {
		return nil, errors.NewNotAuthenticatedError()
	}
	return a.Session.CurrentUser(), nil
}

// formatter builds the output formatter selected by --format.
func formatter(cmd *cobra.Command) (ux.Formatter, string, error) {
	format, _ := cmd.Flags().GetString("format")
	f, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return nil, "", err
	}
	return f, format, nil
}

// renderError converts any failure into the message shown to the user.
// Gateway errors surface their normalized UserMessage, never transport text.
func renderError(err error) error {
	if apiErr, ok := api.AsError(err); ok {
		return errors.Wrap(codeFor(apiErr), apiErr.UserMessage, nil)
	}
	return err
}

func codeFor(apiErr *api.Error) errors.ErrorCode {
	switch {
	case apiErr.IsTimeout:
		return errors.ErrCodeTimeout
	case apiErr.IsNetwork:
		return errors.ErrCodeNetworkFailure
	case apiErr.Unauthorized():
		return errors.ErrCodeSessionExpired
	case apiErr.Status == 403:
		return errors.ErrCodeForbidden
	case apiErr.Status == 429:
		return errors.ErrCodeRateLimited
	case apiErr.Status >= 500:
		return errors.ErrCodeServerError
	default:
		return errors.ErrCodeValidation
	}
}

// guardSession signs the session out when an authenticated call reports 401,
// so the stale credential is not retried on the next run.
func (a *App) guardSession(err error) error {
	if apiErr, ok := api.AsError(err); ok && apiErr.Unauthorized() {
		a.Session.SignOut()
		return errors.NewSessionExpiredError(err)
	}
	return renderError(err)
}
