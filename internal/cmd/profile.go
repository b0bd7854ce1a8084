package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/session"
	"github.com/fidelizaplus/gestao/internal/tui"
	"github.com/fidelizaplus/gestao/internal/ux"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your own account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		user, err := app.RequireSession(cmd.Context())
		if err != nil {
			return err
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(user)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Name:         %s\n", user.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "Email:        %s\n", user.Email)
		fmt.Fprintf(cmd.OutOrStdout(), "Account type: %s\n", user.UserType)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your name or password",
	Long: `Change your own name and/or password. After the backend accepts the
change the local session mirror is updated in place, so 'auth status'
reflects it immediately.

Examples:
  gestao profile update --name "Ana Maria"
  gestao profile update --password-prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		var update api.ProfileUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			update.Name = &name
		}
		if prompt, _ := cmd.Flags().GetBool("password-prompt"); prompt {
			password, err := tui.PromptForPassword("New password")
			if err != nil {
				return err
			}
			update.Password = &password
		}
		if update.Name == nil && update.Password == nil {
			return fmt.Errorf("nothing to update: pass --name and/or --password-prompt")
		}

		updated, err := app.Gateway.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return app.guardSession(err)
		}

		// Mirror the accepted change locally instead of re-fetching.
		app.Session.UpdateUserLocally(session.UserPatch{Name: &updated.Name, Email: &updated.Email})

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render("Profile updated."))
		return nil
	},
}

var profileRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch your profile from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		user, err := app.Session.RefreshProfile(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile refreshed: %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("name", "", "new display name")
	profileUpdateCmd.Flags().Bool("password-prompt", false, "prompt for a new password")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileRefreshCmd)

	rootCmd.AddCommand(profileCmd)
}
