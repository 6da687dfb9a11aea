package testutil

import (
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// Date parses a YYYY-MM-DD string, panicking on bad input. Fixture dates
// are literals, so a parse failure is a broken test.
func Date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Course options
type CourseOption func(*domain.CourseSpec)

func WithPriority(p domain.Priority) CourseOption {
	return func(c *domain.CourseSpec) {
		c.Priority = p
	}
}

func WithExamDate(s string) CourseOption {
	return func(c *domain.CourseSpec) {
		d := Date(s)
		c.ExamDate = &d
	}
}

func WithComponent(name string, hours float64) CourseOption {
	return func(c *domain.CourseSpec) {
		c.AddComponent(name, hours, nil)
	}
}

// NewCourse builds a CourseSpec with MEDIUM priority unless overridden.
func NewCourse(id string, hours float64, opts ...CourseOption) domain.CourseSpec {
	c := domain.CourseSpec{
		ID:            id,
		Priority:      domain.PriorityMedium,
		WorkloadHours: hours,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewValidPlan builds a plan that passes validation: one 8-hour HIGH
// course over three 5-hour days.
func NewValidPlan() *domain.PlanSpec {
	plan := domain.NewPlanSpec()
	plan.PlanName = "Exam Week"
	plan.StartDate = Date("2025-06-01")
	plan.EndDate = Date("2025-06-03")
	plan.AddCourse(NewCourse("CS101", 8,
		WithPriority(domain.PriorityHigh),
		WithExamDate("2025-06-03")))
	plan.SetAvailability("2025-06-01", 5)
	plan.SetAvailability("2025-06-02", 5)
	plan.SetAvailability("2025-06-03", 5)
	return plan
}
