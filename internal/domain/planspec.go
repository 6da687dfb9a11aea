package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the canonical date format used across the plan,
// schedule and persistence layers.
const DateLayout = "2006-01-02"

// DefaultPlanName is used until a plan is explicitly named.
const DefaultPlanName = "Untitled Plan"

// ComponentSpec is an informational sub-unit of a course (assignment,
// project, reading list). Components never drive block placement.
type ComponentSpec struct {
	Name           string
	EstimatedHours float64
	DueDate        *time.Time
}

// CourseSpec describes one course to be scheduled.
type CourseSpec struct {
	ID            string
	Priority      Priority
	WorkloadHours float64
	ExamDate      *time.Time
	Components    []ComponentSpec
}

// AddComponent appends an informational component to the course.
func (c *CourseSpec) AddComponent(name string, estimatedHours float64, dueDate *time.Time) {
	c.Components = append(c.Components, ComponentSpec{
		Name:           name,
		EstimatedHours: estimatedHours,
		DueDate:        dueDate,
	})
}

// SchedulingRules are the validator's contract for per-day capacity and
// block shape. The allocation engine uses its own fixed constants and
// deliberately ignores these fields; see scheduler.Generate.
type SchedulingRules struct {
	MaxHoursPerDay            float64
	BlockDurationMinutes      int
	BreakDurationMinutes      int
	MaxContinuousBlockMinutes int
}

// DefaultRules returns the standard scheduling rules.
func DefaultRules() SchedulingRules {
	return SchedulingRules{
		MaxHoursPerDay:            8.0,
		BlockDurationMinutes:      90,
		BreakDurationMinutes:      15,
		MaxContinuousBlockMinutes: 180,
	}
}

// SoftPreferences document which score dimensions the user cares about.
// The scorer computes all dimensions unconditionally; these toggles are
// carried for the persisted payload only.
type SoftPreferences struct {
	PreferSpreadness bool
	PreferBuffer     bool
	PreferInterleave bool
}

// PlanSpec is the accumulated planning state for one session. It is
// mutated command by command and snapshotted by the allocation engine.
type PlanSpec struct {
	PlanName  string
	StartDate time.Time
	EndDate   time.Time
	Courses   []CourseSpec
	// Availability maps DateLayout-formatted dates to capacity hours.
	Availability map[string]float64
	Rules        SchedulingRules
	SoftPrefs    SoftPreferences
}

// NewPlanSpec creates an empty plan with default name, rules and prefs.
func NewPlanSpec() *PlanSpec {
	return &PlanSpec{
		PlanName:     DefaultPlanName,
		Availability: make(map[string]float64),
		Rules:        DefaultRules(),
		SoftPrefs: SoftPreferences{
			PreferSpreadness: true,
			PreferBuffer:     true,
			PreferInterleave: true,
		},
	}
}

// AddCourse appends a course to the plan.
func (p *PlanSpec) AddCourse(c CourseSpec) {
	p.Courses = append(p.Courses, c)
}

// RemoveCourse deletes the course with the given id, reporting whether
// it was present.
func (p *PlanSpec) RemoveCourse(id string) bool {
	for i, c := range p.Courses {
		if c.ID == id {
			p.Courses = append(p.Courses[:i], p.Courses[i+1:]...)
			return true
		}
	}
	return false
}

// Course returns a pointer to the course with the given id, or nil.
func (p *PlanSpec) Course(id string) *CourseSpec {
	for i := range p.Courses {
		if p.Courses[i].ID == id {
			return &p.Courses[i]
		}
	}
	return nil
}

// SetAvailability upserts the capacity for one date. The date must be in
// DateLayout form.
func (p *PlanSpec) SetAvailability(date string, hours float64) {
	if p.Availability == nil {
		p.Availability = make(map[string]float64)
	}
	p.Availability[date] = hours
}

// AvailabilityOn returns the capacity for a date, zero if unset.
func (p *PlanSpec) AvailabilityOn(date string) float64 {
	return p.Availability[date]
}

// AvailabilityDates returns the availability dates in ascending order.
func (p *PlanSpec) AvailabilityDates() []string {
	dates := make([]string, 0, len(p.Availability))
	for d := range p.Availability {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// TotalWorkloadHours sums the workload across all courses.
func (p *PlanSpec) TotalWorkloadHours() float64 {
	var total float64
	for _, c := range p.Courses {
		total += c.WorkloadHours
	}
	return total
}

// TotalAvailabilityHours sums the declared capacity across all dates.
func (p *PlanSpec) TotalAvailabilityHours() float64 {
	var total float64
	for _, h := range p.Availability {
		total += h
	}
	return total
}

// ClearCourses drops all courses, keeping availability and rules.
func (p *PlanSpec) ClearCourses() {
	p.Courses = nil
}

// Clear resets the plan to its initial empty state.
func (p *PlanSpec) Clear() {
	*p = *NewPlanSpec()
}

// Validate checks the complete plan and returns every violated rule.
// The plan is valid iff the returned slice is empty. Rule order is fixed
// for reproducible messages. When start/end dates are unset they are
// inferred here from the availability map; this is the one place a
// read-like operation mutates the plan.
func (p *PlanSpec) Validate() []string {
	var errs []string

	if strings.TrimSpace(p.PlanName) == "" {
		errs = append(errs, "Plan name cannot be empty")
	}

	if len(p.Courses) == 0 {
		errs = append(errs, "At least one course must be specified")
	}

	seen := make(map[string]bool)
	var dups []string
	for _, c := range p.Courses {
		if c.ID != "" && seen[c.ID] {
			dups = append(dups, c.ID)
		}
		seen[c.ID] = true
	}
	if len(dups) > 0 {
		errs = append(errs, fmt.Sprintf("Duplicate course IDs: %s", strings.Join(dups, ", ")))
	}

	for _, c := range p.Courses {
		errs = append(errs, p.validateCourse(c)...)
	}

	if len(p.Availability) == 0 {
		errs = append(errs, "No availability specified")
	}
	for _, date := range p.AvailabilityDates() {
		hours := p.Availability[date]
		if hours < 0 {
			errs = append(errs, fmt.Sprintf("Negative availability hours on %s", date))
		} else if hours > p.Rules.MaxHoursPerDay {
			errs = append(errs, fmt.Sprintf("Availability on %s (%.1f hours) exceeds max hours per day (%.1f)",
				date, hours, p.Rules.MaxHoursPerDay))
		}
	}

	p.inferDateRange()

	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.StartDate.After(p.EndDate) {
		errs = append(errs, fmt.Sprintf("Start date %s is after end date %s",
			p.StartDate.Format(DateLayout), p.EndDate.Format(DateLayout)))
	}

	if len(p.Courses) > 0 && len(p.Availability) > 0 {
		workload := p.TotalWorkloadHours()
		capacity := p.TotalAvailabilityHours()
		if workload > capacity {
			errs = append(errs, fmt.Sprintf("Total workload (%.1f hours) exceeds total availability (%.1f hours) by %.1f hours",
				workload, capacity, workload-capacity))
		}
	}

	if p.Rules.MaxHoursPerDay <= 0 {
		errs = append(errs, "Max hours per day must be positive")
	}
	if p.Rules.BlockDurationMinutes <= 0 {
		errs = append(errs, "Block duration must be positive")
	}
	if p.Rules.BreakDurationMinutes < 0 {
		errs = append(errs, "Break duration cannot be negative")
	}
	if p.Rules.MaxContinuousBlockMinutes < p.Rules.BlockDurationMinutes {
		errs = append(errs, "Max continuous block minutes must be at least block duration")
	}

	return errs
}

func (p *PlanSpec) validateCourse(c CourseSpec) []string {
	var errs []string

	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, "Course ID cannot be empty")
	}
	if c.Priority == "" {
		errs = append(errs, fmt.Sprintf("Priority must be specified for course %s", c.ID))
	}
	if c.WorkloadHours <= 0 {
		errs = append(errs, fmt.Sprintf("Workload hours must be positive for course %s", c.ID))
	}

	var componentHours float64
	for _, comp := range c.Components {
		if strings.TrimSpace(comp.Name) == "" {
			errs = append(errs, fmt.Sprintf("Component name cannot be empty in course %s", c.ID))
		}
		if comp.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("Component hours must be positive for %s in course %s", comp.Name, c.ID))
		}
		componentHours += comp.EstimatedHours
	}
	// Components may slightly overshoot the workload to account for
	// rounding, but not by more than 10%.
	if componentHours > c.WorkloadHours*1.1 {
		errs = append(errs, fmt.Sprintf("Component hours exceed total workload for course %s", c.ID))
	}

	if c.ExamDate != nil && !p.StartDate.IsZero() && c.ExamDate.Before(p.StartDate) {
		errs = append(errs, fmt.Sprintf("Exam date for course %s is before plan start date", c.ID))
	}

	return errs
}

// inferDateRange fills unset start/end dates from the availability map.
func (p *PlanSpec) inferDateRange() {
	dates := p.AvailabilityDates()
	if len(dates) == 0 {
		return
	}
	if p.StartDate.IsZero() {
		if t, err := time.Parse(DateLayout, dates[0]); err == nil {
			p.StartDate = t
		}
	}
	if p.EndDate.IsZero() {
		if t, err := time.Parse(DateLayout, dates[len(dates)-1]); err == nil {
			p.EndDate = t
		}
	}
}
