package service

import (
	"context"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// SessionService executes DSL commands against one planning session.
// A session holds exactly one mutable plan and at most one current
// schedule; callers must serialize access (single user, no locking).
type SessionService interface {
	// Execute parses one command line, merges its fragment into the
	// session plan or triggers the corresponding engine action, and
	// returns the outcome. Parse errors (syntax, local semantics) are
	// returned as errors; rule violations and state problems come back
	// as failed results.
	Execute(ctx context.Context, commandText string) (*contract.CommandResult, error)

	// CurrentPlan exposes the session plan for read-only rendering.
	CurrentPlan() *domain.PlanSpec

	// CurrentSchedule returns the schedule of the last generate or
	// load, nil if none.
	CurrentSchedule() *domain.Schedule
}
