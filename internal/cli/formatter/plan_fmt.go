package formatter

import (
	"fmt"
	"strings"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// FormatSubjectList renders the current plan's subjects as a table.
func FormatSubjectList(courses []domain.CourseSpec) string {
	if len(courses) == 0 {
		return Dim("No subjects added yet.") + "\n"
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		exam := Dim("—")
		if c.ExamDate != nil {
			exam = c.ExamDate.Format(domain.DateLayout)
		}
		rows = append(rows, []string{
			Bold(c.ID),
			fmt.Sprintf("%.1f h", c.WorkloadHours),
			PriorityIndicator(c.Priority),
			exam,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Subjects") + "\n")
	b.WriteString(RenderTable([]string{"Subject", "Workload", "Priority", "Exam"}, rows))
	return b.String()
}

// FormatAvailability renders the availability calendar as a table.
func FormatAvailability(entries []contract.AvailabilityEntry) string {
	if len(entries) == 0 {
		return Dim("No availability set yet.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	total := 0.0
	for _, e := range entries {
		rows = append(rows, []string{e.Date, fmt.Sprintf("%.1f h", e.Hours)})
		total += e.Hours
	}

	var b strings.Builder
	b.WriteString(Header("Availability") + "\n")
	b.WriteString(RenderTable([]string{"Date", "Hours"}, rows))
	b.WriteString(Dim(fmt.Sprintf("Total: %.1f hours over %d days", total, len(entries))) + "\n")
	return b.String()
}

// FormatValidationErrors renders plan validation failures as a red list.
func FormatValidationErrors(errs []string) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("Plan validation failed:") + "\n")
	for _, e := range errs {
		b.WriteString("  " + StyleRed.Render("✗ ") + e + "\n")
	}
	return b.String()
}
