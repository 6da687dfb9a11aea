package cli

import (
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

// commandSuggestions lists every DSL command plus the shell built-ins for
// the first-word completion pool.
var commandSuggestions = []prompt.Suggest{
	{Text: "ADD SUBJECT", Description: "Add a subject: ADD SUBJECT \"CS101\" HOURS 20 PRIORITY HIGH"},
	{Text: "SET AVAILABILITY", Description: "Set free hours: SET AVAILABILITY ON 2025-06-01 CAPACITY 4 HOURS"},
	{Text: "GENERATE SCHEDULE", Description: "Validate the plan and build a timetable"},
	{Text: "SHOW SCHEDULE", Description: "Display the current schedule"},
	{Text: "SHOW HISTORY", Description: "Show past commands"},
	{Text: "LIST SUBJECTS", Description: "Show all subjects in the plan"},
	{Text: "LIST AVAILABILITY", Description: "Show the availability calendar"},
	{Text: "UPDATE SUBJECT", Description: "Change workload or priority of a subject"},
	{Text: "DELETE SUBJECT", Description: "Remove a subject from the plan"},
	{Text: "LOAD SCHEDULE", Description: "Restore a saved schedule by file or id"},
	{Text: "CLEAR SUBJECTS", Description: "Remove all subjects"},
	{Text: "CLEAR SCHEDULE", Description: "Drop the current schedule"},
	{Text: "CLEAR ALL", Description: "Reset plan, schedule and history"},
	{Text: "help", Description: "Show the command reference"},
	{Text: "clear", Description: "Clear the screen"},
	{Text: "exit", Description: "Leave the shell"},
}

// keywordSuggestions completes mid-command keywords once a command has
// been started.
var keywordSuggestions = []prompt.Suggest{
	{Text: "ON", Description: "Availability date follows"},
	{Text: "CAPACITY", Description: "Availability hours follow"},
	{Text: "HOURS", Description: "Workload or capacity unit"},
	{Text: "PRIORITY", Description: "HIGH, MEDIUM (MED) or LOW"},
	{Text: "HIGH", Description: "Highest scheduling priority"},
	{Text: "MEDIUM", Description: "Default scheduling priority"},
	{Text: "LOW", Description: "Lowest scheduling priority"},
}

func (s *shellSession) completer(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()

	// Until the second word is complete the whole line still selects a
	// command; afterwards only keywords are completed.
	if strings.Count(strings.TrimLeft(before, " "), " ") <= 1 {
		return filterByPrefix(commandSuggestions, before)
	}
	return filterByPrefix(keywordSuggestions, d.GetWordBeforeCursor())
}

func filterByPrefix(pool []prompt.Suggest, prefix string) []prompt.Suggest {
	prefix = strings.TrimLeft(prefix, " ")
	if prefix == "" {
		return nil
	}
	lp := strings.ToLower(prefix)
	var out []prompt.Suggest
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s.Text), lp) {
			out = append(out, s)
		}
	}
	return out
}
