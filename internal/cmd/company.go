package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/ux"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "View and edit the company record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var companyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the company details",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		company, err := app.Gateway.MyCompany(cmd.Context())
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(company)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Name:     %s\n", company.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "Address:  %s\n", deref(company.Address))
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", deref(company.Category))
		fmt.Fprintf(cmd.OutOrStdout(), "Logo:     %s\n", deref(company.LogoURL))
		return nil
	},
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the company details",
	Long: `Update the company record. Only the fields passed as flags are sent.
Restricted to administrators.

Examples:
  gestao company update --name "Acme Café & Bar"
  gestao company update --address "Rua A, 1" --category food`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		var update api.CompanyUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			update.Name = &name
		}
		if cmd.Flags().Changed("address") {
			address, _ := cmd.Flags().GetString("address")
			update.Address = &address
		}
		if cmd.Flags().Changed("category") {
			category, _ := cmd.Flags().GetString("category")
			update.Category = &category
		}
		if cmd.Flags().Changed("logo-url") {
			logoURL, _ := cmd.Flags().GetString("logo-url")
			update.LogoURL = &logoURL
		}
		if update == (api.CompanyUpdate{}) {
			return fmt.Errorf("nothing to update: pass at least one of --name, --address, --category, --logo-url")
		}

		updated, err := app.Gateway.UpdateMyCompany(cmd.Context(), update)
		if err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Company %q updated.", updated.Name)))
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func init() {
	companyUpdateCmd.Flags().String("name", "", "company name")
	companyUpdateCmd.Flags().String("address", "", "company address")
	companyUpdateCmd.Flags().String("category", "", "company category")
	companyUpdateCmd.Flags().String("logo-url", "", "logo image URL")

	companyCmd.AddCommand(companyShowCmd)
	companyCmd.AddCommand(companyUpdateCmd)

	rootCmd.AddCommand(companyCmd)
}
