package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/ux"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Show the point transaction history",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		transactions, err := app.Gateway.Transactions(cmd.Context())
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(transactions)
		}

		if len(transactions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions yet.")
			return nil
		}

		rows := make([][]string, 0, len(transactions))
		for _, tx := range transactions {
			rows = append(rows, []string{
				strconv.Itoa(tx.ID),
				strconv.Itoa(tx.Points),
				tx.Client.Name,
				tx.AwardedBy.Name,
				tx.CreatedAt,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(),
			ux.RenderTable([]string{"ID", "POINTS", "CLIENT", "AWARDED BY", "DATE"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
}
