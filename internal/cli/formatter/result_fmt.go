package formatter

import (
	"strings"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
)

// FormatResult renders a command result into terminal output. Views are
// picked by the payload the result carries rather than the command kind,
// so loaded and freshly generated schedules render the same way.
func FormatResult(result *contract.CommandResult) string {
	if !result.Success {
		var b strings.Builder
		if result.Message != "" {
			b.WriteString(StyleRed.Render("✗ "+result.Message) + "\n")
		}
		if len(result.ValidationErrors) > 0 {
			b.WriteString(FormatValidationErrors(result.ValidationErrors))
		}
		return b.String()
	}

	var b strings.Builder
	if result.Message != "" {
		b.WriteString(StyleGreen.Render("✓ "+result.Message) + "\n")
	}

	switch {
	case result.Schedule != nil:
		b.WriteString(FormatSchedule(result.Schedule))
	case result.Courses != nil:
		b.WriteString(FormatSubjectList(result.Courses))
	case result.Availability != nil:
		b.WriteString(FormatAvailability(result.Availability))
	case result.History != nil:
		b.WriteString(FormatHistory(result.History))
	}

	return b.String()
}
