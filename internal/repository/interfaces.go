package repository

import (
	"context"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// SavedSchedule is the listing view of one persisted schedule.
type SavedSchedule struct {
	ID          string
	PlanName    string
	GeneratedAt time.Time
	CreatedAt   time.Time
}

type ScheduleRepo interface {
	// Save persists a schedule and returns its handle.
	Save(ctx context.Context, s *domain.Schedule) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	// List returns saved schedules, newest first.
	List(ctx context.Context) ([]SavedSchedule, error)
	// Latest returns the most recently saved schedule, or ErrNotFound.
	Latest(ctx context.Context) (*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
}

type HistoryRepo interface {
	Append(ctx context.Context, e domain.HistoryEntry) error
	List(ctx context.Context) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
