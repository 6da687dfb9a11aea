package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/testutil"
)

// TestGenerate_Invariants property-tests the allocation invariants over
// randomized plans: per-day capacity, block shape, no overlaps within a
// day and scheduled-never-exceeds-workload per course.
func TestGenerate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	priorities := []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}

	for trial := 0; trial < 100; trial++ {
		plan := domain.NewPlanSpec()
		plan.StartDate = testutil.Date("2025-06-01")
		days := rng.Intn(10) + 1
		plan.EndDate = plan.StartDate.AddDate(0, 0, days-1)

		numCourses := rng.Intn(4) + 1
		for i := 0; i < numCourses; i++ {
			plan.AddCourse(domain.CourseSpec{
				ID:            fmt.Sprintf("C%d", i),
				Priority:      priorities[rng.Intn(len(priorities))],
				WorkloadHours: float64(rng.Intn(20) + 1),
			})
		}

		for d := 0; d < days; d++ {
			if rng.Intn(4) == 0 {
				continue // leave some days without availability
			}
			date := plan.StartDate.AddDate(0, 0, d).Format(domain.DateLayout)
			plan.SetAvailability(date, float64(rng.Intn(10)+1))
		}

		schedule := Generate(plan)

		// Per-day hours never exceed min(availability, 8).
		for _, date := range schedule.ScheduledDates() {
			var hours float64
			for _, b := range schedule.BlocksForDate(date) {
				hours += b.DurationHours()
			}
			allowed := plan.AvailabilityOn(date)
			if allowed > 8 {
				allowed = 8
			}
			assert.LessOrEqual(t, hours, allowed+1e-9,
				"trial %d: %s scheduled %.1f over cap %.1f", trial, date, hours, allowed)
		}

		// Every block is an atomic 2-hour block within the horizon.
		for _, b := range schedule.Blocks {
			assert.Equal(t, 120, b.DurationMinutes, "trial %d", trial)
			assert.GreaterOrEqual(t, b.Date, plan.StartDate.Format(domain.DateLayout), "trial %d", trial)
			assert.LessOrEqual(t, b.Date, plan.EndDate.Format(domain.DateLayout), "trial %d", trial)
		}

		// Blocks on one day never overlap: each starts after the
		// previous one ends.
		for _, date := range schedule.ScheduledDates() {
			blocks := schedule.BlocksForDate(date)
			for i := 1; i < len(blocks); i++ {
				assert.Greater(t, blocks[i].StartTime, blocks[i-1].EndTime,
					"trial %d: overlapping blocks on %s", trial, date)
			}
		}

		// Each phase quota rounds up to whole blocks, so a course can
		// overshoot its workload by strictly less than one block per
		// phase.
		for _, c := range plan.Courses {
			assert.Less(t, schedule.HoursForCourse(c.ID), c.WorkloadHours+4,
				"trial %d: course %s overscheduled", trial, c.ID)
		}

		// Deterministic replay.
		again := Generate(plan)
		assert.Equal(t, schedule.Blocks, again.Blocks, "trial %d", trial)
	}
}
