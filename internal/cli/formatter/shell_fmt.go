package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	logo := StylePurple.Render("  studyplan")
	b.WriteString("\n")
	b.WriteString(logo + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Describe your subjects and free days, then generate a plan.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("ADD SUBJECT \"CS101\" HOURS 20 PRIORITY HIGH") + "\n")
	b.WriteString("  " + StyleGreen.Render("SET AVAILABILITY ON 2025-06-01 CAPACITY 4 HOURS") + "\n")
	b.WriteString("  " + StyleGreen.Render("GENERATE SCHEDULE") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab for autocomplete. Type 'help' for the full command list.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-46s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Building a plan",
			commands: [][]string{
				{"ADD SUBJECT \"<id>\" HOURS <n> PRIORITY <p>", "Add a subject (HIGH/MEDIUM/LOW)"},
				{"SET AVAILABILITY ON <date> CAPACITY <n> HOURS", "Set free hours on a day"},
				{"UPDATE SUBJECT \"<id>\" HOURS <n>", "Change a subject's workload"},
				{"UPDATE SUBJECT \"<id>\" PRIORITY <p>", "Change a subject's priority"},
				{"DELETE SUBJECT \"<id>\"", "Remove a subject"},
			},
		},
		{
			title: "Scheduling",
			commands: [][]string{
				{"GENERATE SCHEDULE", "Validate the plan and build a timetable"},
				{"SHOW SCHEDULE", "Display the current schedule"},
				{"LOAD SCHEDULE \"<file-or-id>\"", "Restore a saved schedule"},
			},
		},
		{
			title: "Inspecting",
			commands: [][]string{
				{"LIST SUBJECTS", "Show all subjects in the plan"},
				{"LIST AVAILABILITY", "Show the availability calendar"},
				{"SHOW HISTORY", "Show past commands"},
			},
		},
		{
			title: "Resetting",
			commands: [][]string{
				{"CLEAR SUBJECTS", "Remove all subjects"},
				{"CLEAR SCHEDULE", "Drop the current schedule"},
				{"CLEAR ALL", "Reset plan, schedule and history"},
			},
		},
		{
			title: "Shell",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}

	b.WriteString("\n" + StyleDim.Render(
		"Dates accept YYYY-MM-DD or DD/MM/YYYY. Quoted names may contain spaces."))

	return RenderBox("Commands", b.String())
}
