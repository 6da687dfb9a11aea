package formatter

import (
	"strings"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// FormatHistory renders the command history, oldest first.
func FormatHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return Dim("No commands recorded yet.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(e.EnteredAt.Format("2006-01-02 15:04:05")),
			StyleBlue.Render(e.Kind),
			e.Command,
		})
	}

	var b strings.Builder
	b.WriteString(Header("History") + "\n")
	b.WriteString(RenderTable([]string{"When", "Kind", "Command"}, rows))
	return b.String()
}
