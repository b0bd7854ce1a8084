package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/credential"
	"github.com/fidelizaplus/gestao/internal/session"
	"github.com/fidelizaplus/gestao/internal/tui"
	"github.com/fidelizaplus/gestao/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the partner session",
	Long: `Manage the partner session for the Fideliza+ backend.

Credentials are stored in ` + "`credentials.json`" + ` under the gestao home
directory (default ~/.gestao). Only admin and collaborator accounts may use
this tool; client accounts are rejected.

Examples:
  gestao auth login --email ana@acme.com
  gestao auth status
  gestao auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Sign in to the Fideliza+ backend with your partner email and password.

Missing flags are prompted interactively; the password prompt is masked.
On success the bearer token is saved locally and reused on the next run.

Examples:
  gestao auth login
  gestao auth login --email ana@acme.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{
				Message:     "Email",
				Placeholder: "you@company.com",
				Required:    true,
			})
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = tui.PromptForPassword("Password")
			if err != nil {
				return err
			}
		}

		user, err := app.Session.SignIn(cmd.Context(), email, password)
		if err != nil {
			return renderError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render("Login successful!"))
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.UserType)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		// Unconditional and idempotent: signing out while signed out is fine.
		app.Session.SignOut()

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

// authStatusOutput is the machine-readable status shape.
type authStatusOutput struct {
	Status           string `json:"status" yaml:"status"`
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	Email            string `json:"email,omitempty" yaml:"email,omitempty"`
	UserType         string `json:"user_type,omitempty" yaml:"user_type,omitempty"`
	CompanyID        int    `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	TokenFingerprint string `json:"token_fingerprint,omitempty" yaml:"token_fingerprint,omitempty"`
	Backend          string `json:"backend" yaml:"backend"`
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}

		out := authStatusOutput{Backend: app.Gateway.BaseURL()}
		if app.Session.Bootstrap(cmd.Context()) == session.StatusAuthenticated {
			user := app.Session.CurrentUser()
			out.Status = "authenticated"
			out.Name = user.Name
			out.Email = user.Email
			out.UserType = user.UserType
			out.CompanyID = user.CompanyID
			out.TokenFingerprint = credential.Fingerprint(app.Session.Token())
		} else {
			out.Status = "unauthenticated"
		}

		if format != "text" {
			return f.Format(out)
		}

		if out.Status != "authenticated" {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			fmt.Fprintln(cmd.OutOrStdout(), ux.MutedStyle.Render("Use 'gestao auth login' to sign in."))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", out.Name, out.Email)
		fmt.Fprintf(cmd.OutOrStdout(), "Account type:      %s\n", out.UserType)
		fmt.Fprintf(cmd.OutOrStdout(), "Company ID:        %d\n", out.CompanyID)
		fmt.Fprintf(cmd.OutOrStdout(), "Token fingerprint: %s\n", out.TokenFingerprint)
		fmt.Fprintf(cmd.OutOrStdout(), "Backend:           %s\n", out.Backend)
		return nil
	},
}

var authForgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password recovery email",
	Long: `Request a password recovery email for a partner account.

The backend answers the same way whether or not the account exists, so this
command cannot be used to probe for registered emails. The email carries a
reset token for 'gestao auth reset-password'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{Message: "Email", Required: true})
			if err != nil {
				return err
			}
		}

		msg, err := app.Gateway.RequestPasswordRecovery(cmd.Context(), email)
		if err != nil {
			return renderError(err)
		}
		if msg == "" {
			msg = "If the account exists, a recovery email was sent."
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var authResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using an emailed reset token",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			return fmt.Errorf("--token is required (it arrives in the recovery email)")
		}

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password, err = tui.PromptForPassword("New password")
			if err != nil {
				return err
			}
		}

		if err := app.Gateway.ResetPassword(cmd.Context(), token, password); err != nil {
			return renderError(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render("Password updated."))
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'gestao auth login' to sign in with the new password.")
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "partner account email")
	authLoginCmd.Flags().String("password", "", "partner account password (prompted if omitted)")

	authForgotPasswordCmd.Flags().String("email", "", "partner account email")

	authResetPasswordCmd.Flags().String("token", "", "reset token from the recovery email")
	authResetPasswordCmd.Flags().String("password", "", "new password (prompted if omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authForgotPasswordCmd)
	authCmd.AddCommand(authResetPasswordCmd)

	rootCmd.AddCommand(authCmd)
}
