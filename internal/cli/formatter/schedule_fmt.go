package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// FormatSchedule renders the full schedule view: day-by-day timetable,
// score panel and generation explanations.
func FormatSchedule(s *domain.Schedule) string {
	var b strings.Builder

	title := s.PlanName
	if title == "" {
		title = "Schedule"
	}
	b.WriteString(Header(title) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s to %s · generated %s",
		s.StartDate.Format(domain.DateLayout),
		s.EndDate.Format(domain.DateLayout),
		s.GeneratedAt.Format("2006-01-02 15:04"))) + "\n\n")

	if s.IsEmpty() {
		b.WriteString(Dim("No blocks scheduled.") + "\n")
		return b.String()
	}

	for _, date := range s.ScheduledDates() {
		label := date
		if day, err := time.Parse(domain.DateLayout, date); err == nil {
			label = day.Format("Mon 2006-01-02")
		}
		b.WriteString(StyleBold.Render(label) + "\n")
		for _, block := range s.BlocksForDate(date) {
			b.WriteString(fmt.Sprintf("  %s-%s  %s  %s\n",
				block.StartTime, block.EndTime,
				Bold(block.CourseID),
				PriorityIndicator(block.Priority)))
		}
	}

	b.WriteString("\n" + formatScorePanel(s.Score))
	b.WriteString("\n" + formatMetadata(s.Metadata))

	if len(s.Explanations) > 0 {
		b.WriteString("\n" + Header("Explanations") + "\n")
		for _, e := range s.Explanations {
			style := StyleDim
			if strings.HasPrefix(e, "Could not schedule") {
				style = StyleRed
			} else if strings.HasPrefix(e, "Suggestion:") {
				style = StyleYellow
			}
			b.WriteString("  " + style.Render(e) + "\n")
		}
	}

	return b.String()
}

func formatScorePanel(score domain.ScheduleScore) string {
	var b strings.Builder
	b.WriteString(Header("Score") + "\n")
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Overall", RenderScoreBar(score.OverallScore, 20)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Spreadness", RenderScoreBar(score.SpreadnessScore, 20)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Buffer", RenderScoreBar(score.BufferScore, 20)))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", "Interleave", RenderScoreBar(score.InterleaveScore, 20)))
	return b.String()
}

func formatMetadata(m domain.ScheduleMetadata) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("  %d courses · %d blocks · %d study days",
		m.TotalCourses, m.TotalBlocks, m.StudyPeriodDays)) + "\n")
	b.WriteString(Dim(fmt.Sprintf("  completion %.1f%% · utilization %.1f%% of %.1f available hours",
		m.CompletionRate, m.UtilizationRate, m.TotalAvailableHours)) + "\n")
	return b.String()
}
