package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/cli/formatter"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/parser"
)

// shellSession holds mutable state across the REPL loop.
type shellSession struct {
	app      *App
	wantExit bool
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive planning shell with autocomplete",
		Long: `Start the interactive chatbot shell. Plan commands build up a
study plan across turns; GENERATE SCHEDULE validates it and produces
a scored timetable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	sess := &shellSession{app: app}

	fmt.Print(formatter.FormatShellWelcome())

	p := prompt.New(
		sess.executor,
		sess.completer,
		prompt.OptionPrefix("studyplan ❯ "),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return sess.wantExit
		}),
		prompt.OptionTitle("studyplan shell"),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Purple),
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

func (s *shellSession) executor(input string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return
	}

	switch strings.ToLower(trimmed) {
	case "exit", "quit":
		fmt.Println(formatter.Dim("Goodbye."))
		s.wantExit = true
		return
	case "help":
		fmt.Println(formatter.FormatShellHelp())
		return
	case "clear":
		fmt.Print("\033[H\033[2J")
		return
	}

	result, err := s.app.Session.Execute(context.Background(), trimmed)
	if err != nil {
		fmt.Println(renderCommandError(err))
		return
	}
	fmt.Print(formatter.FormatResult(result))
}

// renderCommandError gives parse failures a friendlier face than the raw
// error string.
func renderCommandError(err error) string {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return formatter.StyleRed.Render(fmt.Sprintf("Syntax error: %v", err)) + "\n" +
			formatter.Dim("Type 'help' for the command reference.")
	}
	var semanticErr *parser.SemanticError
	if errors.As(err, &semanticErr) {
		return formatter.StyleRed.Render(fmt.Sprintf("Invalid command: %v", err))
	}
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}
