package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/ux"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Award loyalty points",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var pointsAddCmd = &cobra.Command{
	Use:   "add <client-identifier>",
	Short: "Award points to a client",
	Long: `Award loyalty points to a client identified by their Fideliza+ code
(the value behind the QR code in the client app). How many points are
granted is decided by the backend.

Examples:
  gestao points add 7f3a-9c21`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		tx, err := app.Gateway.AddPoints(cmd.Context(), args[0])
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(tx)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Awarded %d points to %s.", tx.Points, tx.Client.Name)))
		return nil
	},
}

func init() {
	pointsCmd.AddCommand(pointsAddCmd)
	rootCmd.AddCommand(pointsCmd)
}
