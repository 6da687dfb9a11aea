package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/cli/formatter"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run a script of plan commands from a file or stdin",
		Long: `Execute plan commands line by line from a script file, or from
stdin when no file is given. Blank lines and lines starting with '#'
are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runScript(app, cmd, path)
		},
	}
}

func runScript(app *App, cmd *cobra.Command, path string) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(in)
	lineNo := 0
	failures := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := app.Session.Execute(context.Background(), line)
		if err != nil {
			failures++
			fmt.Fprintf(out, "%s\n", formatter.StyleRed.Render(
				fmt.Sprintf("line %d: %v", lineNo, err)))
			continue
		}
		if !result.Success {
			failures++
		}
		fmt.Fprint(out, formatter.FormatResult(result))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	if failures > 0 {
		return fmt.Errorf("%d command(s) failed", failures)
	}
	return nil
}
