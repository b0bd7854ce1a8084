package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/tui"
	"github.com/fidelizaplus/gestao/internal/ux"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Manage the company's rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rewardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		rewards, err := app.Gateway.Rewards(cmd.Context())
		if err != nil {
			return app.guardSession(err)
		}

		f, format, err := formatter(cmd)
		if err != nil {
			return err
		}
		if format != "text" {
			return f.Format(rewards)
		}

		if len(rewards) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No rewards configured yet.")
			return nil
		}

		rows := make([][]string, 0, len(rewards))
		for _, r := range rewards {
			description := ""
			if r.Description != nil {
				description = *r.Description
			}
			rows = append(rows, []string{
				strconv.Itoa(r.ID), r.Name, strconv.Itoa(r.PointsRequired), description,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ux.RenderTable([]string{"ID", "NAME", "POINTS", "DESCRIPTION"}, rows))
		return nil
	},
}

var rewardsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a reward",
	Long: `Create a reward clients can redeem with their points.

Examples:
  gestao rewards add --name "Free coffee" --points 10
  gestao rewards add --name "Lunch" --points 50 --description "one meal"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if _, err := app.RequireSession(cmd.Context()); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		points, _ := cmd.Flags().GetInt("points")
		if name == "" || points <= 0 {
			return fmt.Errorf("--name and a positive --points are required")
		}

		create := api.RewardCreate{Name: name, PointsRequired: points}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			create.Description = &description
		}

		created, err := app.Gateway.AddReward(cmd.Context(), create)
		if err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Reward %q created (id %d, %d points).",
				created.Name, created.ID, created.PointsRequired)))
		return nil
	},
}

var rewardsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a reward",
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
			return fmt.Errorf("invalid reward id: %s", args[0])
		}

		var update api.RewardUpdate
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			update.Name = &name
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			update.Description = &description
		}
		if cmd.Flags().Changed("points") {
			points, _ := cmd.Flags().GetInt("points")
			update.PointsRequired = &points
		}
		if update.Name == nil && update.Description == nil && update.PointsRequired == nil {
			return fmt.Errorf("nothing to update: pass --name, --description, and/or --points")
		}

		updated, err := app.Gateway.UpdateReward(cmd.Context(), id, update)
		if err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Reward %d updated: %q, %d points.",
				updated.ID, updated.Name, updated.PointsRequired)))
		return nil
	},
}

var rewardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a reward",
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
			return fmt.Errorf("invalid reward id: %s", args[0])
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			confirmed, err := tui.PromptForConfirmation(
				fmt.Sprintf("Delete reward %d?", id), false)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := app.Gateway.DeleteReward(cmd.Context(), id); err != nil {
			return app.guardSession(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ux.SuccessStyle.Render(
			fmt.Sprintf("Reward %d deleted.", id)))
		return nil
	},
}

func init() {
	rewardsAddCmd.Flags().String("name", "", "reward name (required)")
	rewardsAddCmd.Flags().Int("points", 0, "points required to redeem (required)")
	rewardsAddCmd.Flags().String("description", "", "reward description")

	rewardsUpdateCmd.Flags().String("name", "", "new name")
	rewardsUpdateCmd.Flags().Int("points", 0, "new points requirement")
	rewardsUpdateCmd.Flags().String("description", "", "new description")

	rewardsDeleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	rewardsCmd.AddCommand(rewardsListCmd)
	rewardsCmd.AddCommand(rewardsAddCmd)
	rewardsCmd.AddCommand(rewardsUpdateCmd)
	rewardsCmd.AddCommand(rewardsDeleteCmd)

	rootCmd.AddCommand(rewardsCmd)
}
