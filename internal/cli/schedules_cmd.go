package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/cli/formatter"
)

func newSchedulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "Manage saved schedules",
	}
	cmd.AddCommand(
		newSchedulesListCmd(app),
		newSchedulesShowCmd(app),
		newSchedulesDeleteCmd(app),
	)
	return cmd
}

func newSchedulesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved schedules, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Schedules.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(saved) == 0 {
				fmt.Fprintln(out, formatter.Dim("No saved schedules."))
				return nil
			}

			rows := make([][]string, 0, len(saved))
			for _, s := range saved {
				rows = append(rows, []string{
					s.ID,
					s.PlanName,
					s.GeneratedAt.Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"ID", "Plan", "Generated"}, rows))
			return nil
		},
	}
}

func newSchedulesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Schedules.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(schedule))
			return nil
		},
	}
}

func newSchedulesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✓ Deleted "+args[0]))
			return nil
		},
	}
}
