package scheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/testutil"
)

func TestGenerate_PlacesFullWorkload(t *testing.T) {
	plan := testutil.NewValidPlan()
	plan.Course("CS101").ExamDate = nil

	schedule := Generate(plan)

	// 8 hours of workload fit as four 2-hour blocks.
	assert.Len(t, schedule.Blocks, 4)
	assert.Equal(t, 8.0, schedule.TotalScheduledHours())

	for _, e := range schedule.Explanations {
		assert.NotContains(t, e, "Could not schedule")
	}
}

func TestGenerate_BlockShapeAndTimes(t *testing.T) {
	plan := testutil.NewValidPlan()
	schedule := Generate(plan)

	require.NotEmpty(t, schedule.Blocks)
	first := schedule.Blocks[0]
	assert.Equal(t, "08:00", first.StartTime)
	assert.Equal(t, "10:00", first.EndTime)
	assert.Equal(t, 120, first.DurationMinutes)

	// A 15-minute break separates consecutive blocks on the same day.
	day := schedule.BlocksForDate(first.Date)
	if len(day) > 1 {
		assert.Equal(t, "10:15", day[1].StartTime)
		assert.Equal(t, "12:15", day[1].EndTime)
	}
}

func TestGenerate_TwoPhaseFrontLoad(t *testing.T) {
	plan := testutil.NewValidPlan()
	schedule := Generate(plan)

	// Horizon 2025-06-01..03: midpoint 06-02, so phase 1 is 06-01 only.
	// A HIGH course front-loads 60% of 8h = 4.8h, but the single 5-hour
	// day caps phase 1 at two blocks.
	assert.Len(t, schedule.BlocksForDate("2025-06-01"), 2)
	assert.Len(t, schedule.BlocksForDate("2025-06-02"), 2)
	assert.Empty(t, schedule.BlocksForDate("2025-06-03"))

	for _, b := range schedule.BlocksForDate("2025-06-01") {
		assert.Contains(t, b.Reason, "front-load")
	}
	for _, b := range schedule.BlocksForDate("2025-06-02") {
		assert.Contains(t, b.Reason, "back-fill")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	plan := testutil.NewValidPlan()
	plan.AddCourse(testutil.NewCourse("MATH1", 4, testutil.WithPriority(domain.PriorityLow)))
	plan.SetAvailability("2025-06-01", 8)
	plan.SetAvailability("2025-06-02", 8)

	a := Generate(plan)
	b := Generate(plan)

	assert.Equal(t, a.Blocks, b.Blocks)
	assert.Equal(t, a.Explanations, b.Explanations)
	assert.Equal(t, a.Score, b.Score)
}

func TestGenerate_RespectsDailyAvailability(t *testing.T) {
	plan := domain.NewPlanSpec()
	plan.StartDate = testutil.Date("2025-06-01")
	plan.EndDate = testutil.Date("2025-06-05")
	plan.AddCourse(testutil.NewCourse("CS101", 20, testutil.WithPriority(domain.PriorityHigh)))
	for _, d := range []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"} {
		plan.SetAvailability(d, 4)
	}

	schedule := Generate(plan)

	for _, date := range schedule.ScheduledDates() {
		var hours float64
		for _, b := range schedule.BlocksForDate(date) {
			hours += b.DurationHours()
		}
		assert.LessOrEqual(t, hours, 4.0, "date %s over capacity", date)
	}
}

func TestGenerate_ClampsDayAtEightHours(t *testing.T) {
	plan := domain.NewPlanSpec()
	plan.StartDate = testutil.Date("2025-06-01")
	plan.EndDate = testutil.Date("2025-06-02")
	plan.AddCourse(testutil.NewCourse("CS101", 20, testutil.WithPriority(domain.PriorityHigh)))
	plan.SetAvailability("2025-06-01", 12)
	plan.SetAvailability("2025-06-02", 12)

	schedule := Generate(plan)

	// Even with 12 declared hours a day holds at most four blocks.
	assert.Len(t, schedule.BlocksForDate("2025-06-01"), 4)
	assert.Len(t, schedule.BlocksForDate("2025-06-02"), 4)
}

func TestGenerate_HigherPriorityPlacedFirst(t *testing.T) {
	plan := domain.NewPlanSpec()
	plan.StartDate = testutil.Date("2025-06-01")
	plan.EndDate = testutil.Date("2025-06-02")
	plan.AddCourse(testutil.NewCourse("easy", 4, testutil.WithPriority(domain.PriorityLow)))
	plan.AddCourse(testutil.NewCourse("hard", 4, testutil.WithPriority(domain.PriorityHigh)))
	plan.SetAvailability("2025-06-01", 8)
	plan.SetAvailability("2025-06-02", 8)

	schedule := Generate(plan)

	require.NotEmpty(t, schedule.Blocks)
	assert.Equal(t, "hard", schedule.Blocks[0].CourseID)
}

func TestGenerate_ReportsShortfallWithSuggestions(t *testing.T) {
	plan := domain.NewPlanSpec()
	plan.StartDate = testutil.Date("2025-06-01")
	plan.EndDate = testutil.Date("2025-06-01")
	plan.AddCourse(testutil.NewCourse("CS101", 10, testutil.WithPriority(domain.PriorityHigh)))
	plan.SetAvailability("2025-06-01", 4)

	schedule := Generate(plan)

	// Partial output rather than failure.
	assert.Len(t, schedule.Blocks, 2)

	joined := strings.Join(schedule.Explanations, "\n")
	assert.Contains(t, joined, "Could not schedule 6.0 hours for CS101: insufficient capacity")
	assert.Contains(t, joined, "Suggestion: add availability on more days")
	assert.Contains(t, joined, "Suggestion: raise the daily capacity on existing days")
	assert.Contains(t, joined, "Suggestion: reduce course workloads")
	assert.Contains(t, joined, "Suggestion: extend the planning horizon")
}

func TestGenerate_HorizonExplanation(t *testing.T) {
	schedule := Generate(testutil.NewValidPlan())

	require.NotEmpty(t, schedule.Explanations)
	assert.Equal(t,
		"Planning horizon: 2025-06-01 to 2025-06-03 (3 days, midpoint 2025-06-02)",
		schedule.Explanations[0])
}

func TestGenerate_Metadata(t *testing.T) {
	schedule := Generate(testutil.NewValidPlan())

	meta := schedule.Metadata
	assert.Equal(t, 1, meta.TotalCourses)
	assert.Equal(t, 4, meta.TotalBlocks)
	assert.Equal(t, 3, meta.StudyPeriodDays)
	assert.Equal(t, 15.0, meta.TotalAvailableHours)
	assert.InDelta(t, 100.0, meta.CompletionRate, 1e-9)
	assert.InDelta(t, 8.0/15.0*100, meta.UtilizationRate, 1e-9)
}

func TestGenerate_DeadlineCarriedOntoBlocks(t *testing.T) {
	plan := testutil.NewValidPlan()
	schedule := Generate(plan)

	for _, b := range schedule.Blocks {
		require.NotNil(t, b.Deadline)
		assert.Equal(t, "2025-06-03", b.Deadline.Format(domain.DateLayout))
	}
}

// The engine schedules fixed 2-hour blocks regardless of the plan's
// rules; only the validator reads them. This pins that behavior down.
func TestGenerate_IgnoresPlanRules(t *testing.T) {
	plan := testutil.NewValidPlan()
	plan.Rules.BlockDurationMinutes = 90
	plan.Rules.BreakDurationMinutes = 30
	plan.Rules.MaxHoursPerDay = 6

	schedule := Generate(plan)

	require.NotEmpty(t, schedule.Blocks)
	for _, b := range schedule.Blocks {
		assert.Equal(t, 120, b.DurationMinutes)
	}
	day := schedule.BlocksForDate("2025-06-01")
	require.Len(t, day, 2)
	assert.Equal(t, "10:15", day[1].StartTime)
}

func TestGenerate_SkipsZeroAvailabilityDays(t *testing.T) {
	plan := domain.NewPlanSpec()
	plan.StartDate = testutil.Date("2025-06-01")
	plan.EndDate = testutil.Date("2025-06-03")
	plan.AddCourse(testutil.NewCourse("CS101", 4, testutil.WithPriority(domain.PriorityMedium)))
	plan.SetAvailability("2025-06-02", 8)

	schedule := Generate(plan)

	assert.Empty(t, schedule.BlocksForDate("2025-06-01"))
	assert.Empty(t, schedule.BlocksForDate("2025-06-03"))
	// The front-load quota has nowhere to go in the first half, so only
	// the back-fill block lands.
	assert.Len(t, schedule.BlocksForDate("2025-06-02"), 1)
}
