// Package scheduler implements the allocation engine: a single
// deterministic greedy pass that places fixed-length study blocks onto
// the calendar under daily-capacity and priority constraints.
package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// Engine constants. These are fixed and independent of PlanSpec.Rules:
// the rules are the validator's contract, the engine schedules atomic
// 2-hour blocks with 15-minute breaks starting at 08:00.
const (
	blockHours      = 2.0
	maxDayHours     = 8.0
	breakMinutes    = 15
	blockMinutes    = 120
	dayStartMinutes = 8 * 60 // 08:00
)

// shortfallTolerance is the unscheduled-hours threshold below which a
// course counts as fully placed.
const shortfallTolerance = 0.1

type phase struct {
	number int
	label  string
	start  time.Time
	end    time.Time
}

// allocState tracks per-day consumption across both phases.
type allocState struct {
	plan           *domain.PlanSpec
	schedule       *domain.Schedule
	dailyUsed      map[string]float64 // study hours consumed per date
	dailyNextStart map[string]int     // next free wall-clock slot, minutes since midnight
	scheduled      map[string]float64 // hours placed per course id
}

// Generate runs the allocation algorithm over a validated plan and
// returns the scored schedule. The pass is deterministic: identical
// input produces identical blocks, reasons and explanations; only the
// GeneratedAt timestamp varies.
//
// Insufficient capacity never fails the generation. The engine places
// what fits and reports the shortfall in the explanation log.
func Generate(plan *domain.PlanSpec) *domain.Schedule {
	schedule := domain.NewSchedule(plan.PlanName, plan.StartDate, plan.EndDate)

	totalDays := int(plan.EndDate.Sub(plan.StartDate).Hours()/24) + 1
	splitDate := plan.StartDate.AddDate(0, 0, totalDays/2)

	schedule.AddExplanation(fmt.Sprintf("Planning horizon: %s to %s (%d days, midpoint %s)",
		plan.StartDate.Format(domain.DateLayout),
		plan.EndDate.Format(domain.DateLayout),
		totalDays,
		splitDate.Format(domain.DateLayout)))

	courses := SortCoursesByPriority(plan.Courses)

	firstHalf := make(map[string]float64, len(courses))
	for _, c := range courses {
		firstHalf[c.ID] = c.WorkloadHours * c.Priority.FrontLoadRatio()
		schedule.AddExplanation(fmt.Sprintf("Course %s (priority %s): %.1f hours front-loaded, %.1f hours in second half",
			c.ID, c.Priority, firstHalf[c.ID], c.WorkloadHours-firstHalf[c.ID]))
	}

	st := &allocState{
		plan:           plan,
		schedule:       schedule,
		dailyUsed:      make(map[string]float64),
		dailyNextStart: make(map[string]int),
		scheduled:      make(map[string]float64),
	}

	phases := []phase{
		{number: 1, label: "front-load", start: plan.StartDate, end: splitDate.AddDate(0, 0, -1)},
		{number: 2, label: "back-fill", start: splitDate, end: plan.EndDate},
	}
	for _, ph := range phases {
		placed := 0
		for _, c := range courses {
			hours := firstHalf[c.ID]
			if ph.number == 2 {
				hours = c.WorkloadHours - firstHalf[c.ID]
			}
			placed += st.placeCourse(c, hours, ph)
		}
		schedule.AddExplanation(fmt.Sprintf("Phase %d (%s): placed %d blocks", ph.number, ph.label, placed))
	}

	reportShortfall(schedule, courses, st.scheduled)
	schedule.Metadata = buildMetadata(plan, schedule, totalDays)
	schedule.Recalculate()
	return schedule
}

// placeCourse walks the phase window forward, placing atomic 2-hour
// blocks for one course until its phase quota is met or the window is
// exhausted. Returns the number of blocks placed.
func (st *allocState) placeCourse(c domain.CourseSpec, hours float64, ph phase) int {
	if hours <= 0 {
		return 0
	}
	need := int(math.Ceil(hours / blockHours))
	placed := 0

	for day := ph.start; !day.After(ph.end) && placed < need; day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateLayout)
		avail := st.plan.AvailabilityOn(date)
		if avail <= 0 {
			continue
		}
		capacity := math.Min(avail, maxDayHours)

		for placed < need && capacity-st.dailyUsed[date] >= blockHours {
			start, ok := st.dailyNextStart[date]
			if !ok {
				start = dayStartMinutes
			}
			end := start + blockMinutes

			placed++
			st.dailyUsed[date] += blockHours
			st.dailyNextStart[date] = end + breakMinutes
			st.scheduled[c.ID] += blockHours

			st.schedule.AddBlock(domain.ScheduledBlock{
				CourseID:        c.ID,
				CourseName:      c.ID,
				Priority:        c.Priority,
				Date:            date,
				StartTime:       formatClock(start),
				EndTime:         formatClock(end),
				DurationMinutes: blockMinutes,
				Deadline:        c.ExamDate,
				Reason: fmt.Sprintf("Phase %d (%s): block %d of %d for %s (priority %s) on %s %s-%s",
					ph.number, ph.label, placed, need, c.ID, c.Priority,
					date, formatClock(start), formatClock(end)),
			})
		}
	}
	return placed
}

// reportShortfall appends unmet-demand explanations plus the fixed
// remediation suggestions when any course could not be fully placed.
func reportShortfall(schedule *domain.Schedule, courses []domain.CourseSpec, scheduled map[string]float64) {
	short := false
	for _, c := range courses {
		remaining := c.WorkloadHours - scheduled[c.ID]
		if remaining > shortfallTolerance {
			short = true
			schedule.AddExplanation(fmt.Sprintf("Could not schedule %.1f hours for %s: insufficient capacity",
				remaining, c.ID))
		}
	}
	if !short {
		return
	}
	schedule.AddExplanation("Suggestion: add availability on more days")
	schedule.AddExplanation("Suggestion: raise the daily capacity on existing days")
	schedule.AddExplanation("Suggestion: reduce course workloads")
	schedule.AddExplanation("Suggestion: extend the planning horizon")
}

func buildMetadata(plan *domain.PlanSpec, schedule *domain.Schedule, totalDays int) domain.ScheduleMetadata {
	meta := domain.ScheduleMetadata{
		TotalCourses:        len(plan.Courses),
		TotalBlocks:         len(schedule.Blocks),
		TotalAvailableHours: plan.TotalAvailabilityHours(),
		StudyPeriodDays:     totalDays,
	}
	scheduledHours := schedule.TotalScheduledHours()
	if workload := plan.TotalWorkloadHours(); workload > 0 {
		meta.CompletionRate = math.Min(100, scheduledHours/workload*100)
	}
	if meta.TotalAvailableHours > 0 {
		meta.UtilizationRate = math.Min(100, scheduledHours/meta.TotalAvailableHours*100)
	}
	return meta
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
