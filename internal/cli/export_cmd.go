package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a schedule to calendar or spreadsheet formats",
	}
	cmd.AddCommand(
		newExportICSCmd(app),
		newExportCSVCmd(app),
	)
	return cmd
}

// resolveExportSchedule picks the schedule to export: a saved handle when
// given, otherwise the most recently saved one.
func resolveExportSchedule(app *App, cmd *cobra.Command, id string) (*domain.Schedule, error) {
	if id != "" {
		return app.Schedules.GetByID(cmd.Context(), id)
	}
	return app.Schedules.Latest(cmd.Context())
}

func writeExport(cmd *cobra.Command, outPath, content string) error {
	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
	return nil
}

func newExportICSCmd(app *App) *cobra.Command {
	var scheduleID, outPath string
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := resolveExportSchedule(app, cmd, scheduleID)
			if err != nil {
				return err
			}
			return writeExport(cmd, outPath, export.ICS(schedule))
		},
	}
	cmd.Flags().StringVar(&scheduleID, "schedule", "", "saved schedule id (default: latest)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var scheduleID, outPath string
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export as a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := resolveExportSchedule(app, cmd, scheduleID)
			if err != nil {
				return err
			}
			content, err := export.CSV(schedule)
			if err != nil {
				return err
			}
			return writeExport(cmd, outPath, content)
		},
	}
	cmd.Flags().StringVar(&scheduleID, "schedule", "", "saved schedule id (default: latest)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}
