package domain

import (
	"fmt"
	"sort"
	"time"
)

// ScheduledBlock is one atomic study unit for one course on one date.
// Times are wall-clock "HH:MM" strings; Date uses DateLayout.
type ScheduledBlock struct {
	CourseID        string
	CourseName      string
	Priority        Priority
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int
	ComponentName   string
	Deadline        *time.Time
	Reason          string
}

// DurationHours converts the block duration to hours.
func (b ScheduledBlock) DurationHours() float64 {
	return float64(b.DurationMinutes) / 60.0
}

func (b ScheduledBlock) String() string {
	return fmt.Sprintf("%s on %s %s-%s (%d min)",
		b.CourseID, b.Date, b.StartTime, b.EndTime, b.DurationMinutes)
}

// ScheduleScore aggregates the quality metrics of a schedule. All score
// fields are clamped to [0,100]; hour totals are unbounded.
type ScheduleScore struct {
	OverallScore        float64
	SpreadnessScore     float64
	BufferScore         float64
	InterleaveScore     float64
	TotalScheduledHours float64
	CourseHours         map[string]float64
}

func (s ScheduleScore) String() string {
	return fmt.Sprintf("Overall: %.1f, Spreadness: %.1f, Buffer: %.1f, Interleave: %.1f",
		s.OverallScore, s.SpreadnessScore, s.BufferScore, s.InterleaveScore)
}

// ScheduleMetadata carries generation statistics. The fields are fixed,
// so this is a closed struct rather than an open key/value bag.
type ScheduleMetadata struct {
	TotalCourses        int
	TotalBlocks         int
	TotalAvailableHours float64
	CompletionRate      float64
	UtilizationRate     float64
	StudyPeriodDays     int
}

// Schedule is the output IR of one generate invocation. Block mutations
// keep the score consistent; later plan edits never touch an existing
// schedule, only a new generate call produces a new one.
type Schedule struct {
	PlanName     string
	GeneratedAt  time.Time
	StartDate    time.Time
	EndDate      time.Time
	Blocks       []ScheduledBlock
	Score        ScheduleScore
	Explanations []string
	Metadata     ScheduleMetadata
}

// NewSchedule creates an empty schedule for the given plan and horizon.
func NewSchedule(planName string, start, end time.Time) *Schedule {
	return &Schedule{
		PlanName:    planName,
		GeneratedAt: time.Now(),
		StartDate:   start,
		EndDate:     end,
		Score:       ScheduleScore{CourseHours: map[string]float64{}},
	}
}

// AddBlock appends a block and recalculates the score.
func (s *Schedule) AddBlock(b ScheduledBlock) {
	s.Blocks = append(s.Blocks, b)
	s.Recalculate()
}

// RemoveBlocksByCourse drops every block of the given course, returning
// the number removed. The score is recalculated when anything changed.
func (s *Schedule) RemoveBlocksByCourse(courseID string) int {
	kept := s.Blocks[:0]
	removed := 0
	for _, b := range s.Blocks {
		if b.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	s.Blocks = kept
	if removed > 0 {
		s.Recalculate()
	}
	return removed
}

// ClearBlocks removes all blocks and resets the score.
func (s *Schedule) ClearBlocks() {
	s.Blocks = nil
	s.Recalculate()
}

// AddExplanation appends one human-readable decision to the audit log.
func (s *Schedule) AddExplanation(text string) {
	if text != "" {
		s.Explanations = append(s.Explanations, text)
	}
}

// IsEmpty reports whether the schedule has no blocks.
func (s *Schedule) IsEmpty() bool {
	return len(s.Blocks) == 0
}

// TotalScheduledHours sums the duration of all blocks.
func (s *Schedule) TotalScheduledHours() float64 {
	var total float64
	for _, b := range s.Blocks {
		total += b.DurationHours()
	}
	return total
}

// HoursForCourse sums the scheduled hours of one course.
func (s *Schedule) HoursForCourse(courseID string) float64 {
	var total float64
	for _, b := range s.Blocks {
		if b.CourseID == courseID {
			total += b.DurationHours()
		}
	}
	return total
}

// BlocksForDate returns the blocks on a date ordered by start time.
func (s *Schedule) BlocksForDate(date string) []ScheduledBlock {
	var blocks []ScheduledBlock
	for _, b := range s.Blocks {
		if b.Date == date {
			blocks = append(blocks, b)
		}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartTime < blocks[j].StartTime
	})
	return blocks
}

// ScheduledDates returns the distinct block dates in ascending order.
func (s *Schedule) ScheduledDates() []string {
	seen := make(map[string]bool)
	var dates []string
	for _, b := range s.Blocks {
		if !seen[b.Date] {
			seen[b.Date] = true
			dates = append(dates, b.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// CourseIDs returns the distinct course ids in the schedule, sorted.
func (s *Schedule) CourseIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, b := range s.Blocks {
		if !seen[b.CourseID] {
			seen[b.CourseID] = true
			ids = append(ids, b.CourseID)
		}
	}
	sort.Strings(ids)
	return ids
}
