package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gestao",
	Short: "Partner CLI for the Fideliza+ loyalty program",
	Long: `gestao is the Fideliza+ partner tool: admins and collaborators sign in,
award loyalty points to clients, and manage collaborators, rewards, company
details, and reports. All business rules live in the Fideliza+ backend; this
tool is a client of its REST API.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (overrides config and GESTAO_API_URL)")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json, yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}
