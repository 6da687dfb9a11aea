package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

func TestFormatResult_FailureWithValidationErrors(t *testing.T) {
	result := contract.Failure("GENERATE_SCHEDULE", "Plan validation failed")
	result.ValidationErrors = []string{
		"At least one course must be specified",
		"No availability specified",
	}

	out := FormatResult(result)
	assert.Contains(t, out, "Plan validation failed")
	assert.Contains(t, out, "At least one course must be specified")
	assert.Contains(t, out, "No availability specified")
}

func TestFormatResult_SubjectList(t *testing.T) {
	result := contract.Success("LIST_SUBJECTS", "")
	result.Courses = []domain.CourseSpec{
		{ID: "CS101", Priority: domain.PriorityHigh, WorkloadHours: 20},
	}

	out := FormatResult(result)
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "20.0 h")
	assert.Contains(t, out, "HIGH")
}

func TestFormatResult_EmptySubjectList(t *testing.T) {
	result := contract.Success("LIST_SUBJECTS", "")
	result.Courses = []domain.CourseSpec{}

	assert.Contains(t, FormatResult(result), "No subjects added yet.")
}

func TestFormatResult_Availability(t *testing.T) {
	result := contract.Success("LIST_AVAILABILITY", "")
	result.Availability = []contract.AvailabilityEntry{
		{Date: "2025-06-01", Hours: 4},
		{Date: "2025-06-02", Hours: 2.5},
	}

	out := FormatResult(result)
	assert.Contains(t, out, "2025-06-01")
	assert.Contains(t, out, "4.0 h")
	assert.Contains(t, out, "Total: 6.5 hours over 2 days")
}

func TestFormatResult_Schedule(t *testing.T) {
	start, err := time.Parse(domain.DateLayout, "2025-06-01")
	require.NoError(t, err)
	schedule := domain.NewSchedule("Exam Week", start, start.AddDate(0, 0, 2))
	schedule.AddBlock(domain.ScheduledBlock{
		CourseID: "CS101", CourseName: "CS101", Priority: domain.PriorityHigh,
		Date: "2025-06-01", StartTime: "08:00", EndTime: "10:00", DurationMinutes: 120,
	})
	schedule.AddExplanation("Could not schedule 2.0 hours for MATH1: insufficient capacity")

	result := contract.Success("SHOW_SCHEDULE", "")
	result.Schedule = schedule

	out := FormatResult(result)
	assert.Contains(t, out, "EXAM WEEK")
	assert.Contains(t, out, "08:00-10:00")
	assert.Contains(t, out, "Overall")
	assert.Contains(t, out, "insufficient capacity")
}

func TestFormatResult_History(t *testing.T) {
	result := contract.Success("SHOW_HISTORY", "")
	result.History = []domain.HistoryEntry{
		{EnteredAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), Command: "LIST SUBJECTS", Kind: "LIST_SUBJECTS"},
	}

	out := FormatResult(result)
	assert.Contains(t, out, "LIST SUBJECTS")
	assert.Contains(t, out, "2025-06-01 10:00:00")
}

func TestPriorityIndicator_CoversAllLevels(t *testing.T) {
	assert.Contains(t, PriorityIndicator(domain.PriorityHigh), "HIGH")
	assert.Contains(t, PriorityIndicator(domain.PriorityMedium), "MEDIUM")
	assert.Contains(t, PriorityIndicator(domain.PriorityLow), "LOW")
	assert.Contains(t, PriorityIndicator(domain.Priority("???")), "UNKNOWN")
}
