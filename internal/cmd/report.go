package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the company summary report",
	Long: `Show the backend-computed company report: total points awarded, rewards
redeemed, and unique customers. Restricted to administrators.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		report, err := app.Gateway.ReportSummary(cmd.Context())
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(report)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Points awarded:    %d\n", report.TotalPointsAwarded)
		fmt.Fprintf(cmd.OutOrStdout(), "Rewards redeemed:  %d\n", report.TotalRewardsRedeemed)
		fmt.Fprintf(cmd.OutOrStdout(), "Unique customers:  %d\n", report.UniqueCustomers)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
