package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/tui"
	"github.com/fidelizaplus/gestao/internal/ux"
)

var collaboratorsCmd = &cobra.Command{
	Use:     "collaborators",
	Aliases: []string{"collab"},
	Short:   "Manage the company's collaborator accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var collaboratorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collaborators",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		collaborators, err := app.Gateway.Collaborators(cmd.Context())
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(collaborators)
		}

		if len(collaborators) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No collaborators yet.")
			return nil
		}

		rows := make([][]string, 0, len(collaborators))
		for _, c := range collaborators {
			rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, c.Email})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ux.RenderTable([]string{"ID", "NAME", "EMAIL"}, rows))
		return nil
	},
}

var collaboratorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new collaborator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" || email == "" {
			return fmt.Errorf("--name and --email are required")
		}
		if password == "" {
			password, err = tui.PromptForPassword("Collaborator password")
			if err != nil {
				return err
			}
		}

		created, err := app.Gateway.AddCollaborator(cmd.Context(), api.CollaboratorCreate{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Collaborator %s created (id %d).", created.Name, created.ID)))
		return nil
	},
}

var collaboratorsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a collaborator's name or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid collaborator id: %s", args[0])
		}

		var update api.CollaboratorUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			update.Name = &name
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			update.Email = &email
		}
		if update.Name == nil && update.Email == nil {
			return fmt.Errorf("nothing to update: pass --name and/or --email")
		}

		updated, err := app.Gateway.UpdateCollaborator(cmd.Context(), id, update)
		if err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Collaborator %d updated: %s <%s>.", updated.ID, updated.Name, updated.Email)))
		return nil
	},
}

var collaboratorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a collaborator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid collaborator id: %s", args[0])
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			confirmed, err := tui.PromptForConfirmation(
				fmt.Sprintf("Delete collaborator %d? The account loses access immediately.", id), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := app.Gateway.DeleteCollaborator(cmd.Context(), id); err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Collaborator %d deleted.", id)))
		return nil
	},
}

func init() {
	collaboratorsAddCmd.Flags().String("name", "", "collaborator name (required)")
	collaboratorsAddCmd.Flags().String("email", "", "collaborator email (required)")
	collaboratorsAddCmd.Flags().String("password", "", "initial password (prompted if omitted)")

	collaboratorsUpdateCmd.Flags().String("name", "", "new name")
	collaboratorsUpdateCmd.Flags().String("email", "", "new email")

	collaboratorsDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	collaboratorsCmd.AddCommand(collaboratorsListCmd)
	collaboratorsCmd.AddCommand(collaboratorsAddCmd)
	collaboratorsCmd.AddCommand(collaboratorsUpdateCmd)
	collaboratorsCmd.AddCommand(collaboratorsDeleteCmd)

	rootCmd.AddCommand(collaboratorsCmd)
}
