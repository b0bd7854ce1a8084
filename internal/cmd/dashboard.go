package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive company dashboard",
	Long: `Open an interactive dashboard showing the company report and recent
transactions. The two fetches run concurrently; if one fails its section
shows the error while the other still renders.

Keys: r refreshes, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		companyName := "Dashboard"
		if company, err := app.Gateway.MyCompany(cmd.Context()); err == nil {
			companyName = company.Name
		}

		return tui.RunDashboard(app.Gateway, companyName)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
