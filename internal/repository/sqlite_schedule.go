package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a schedule handle matches nothing.
var ErrNotFound = errors.New("schedule not found")

// createdAtLayout keeps a fixed-width fraction so lexicographic ordering
// in ORDER BY matches chronological ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// The full schedule travels as its JSON payload; the indexed columns
// exist for listing without decoding.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, s *domain.Schedule) (string, error) {
	payload, err := MarshalSchedule(s)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	query := `INSERT INTO schedules (id, plan_name, generated_at, start_date, end_date, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		id,
		s.PlanName,
		s.GeneratedAt.Format(timestampLayout),
		s.StartDate.Format(domain.DateLayout),
		s.EndDate.Format(domain.DateLayout),
		string(payload),
		time.Now().UTC().Format(createdAtLayout),
	)
	if err != nil {
		return "", fmt.Errorf("inserting schedule: %w", err)
	}
	return id, nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var payload string
	query := `SELECT payload FROM schedules WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading schedule %s: %w", id, err)
	}
	return UnmarshalSchedule([]byte(payload))
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]SavedSchedule, error) {
	query := `SELECT id, plan_name, generated_at, created_at FROM schedules ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var saved []SavedSchedule
	for rows.Next() {
		var s SavedSchedule
		var generatedAt, createdAt string
		if err := rows.Scan(&s.ID, &s.PlanName, &generatedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		if t, err := time.Parse(timestampLayout, generatedAt); err == nil {
			s.GeneratedAt = t
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			s.CreatedAt = t
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return saved, nil
}

func (r *SQLiteScheduleRepo) Latest(ctx context.Context) (*domain.Schedule, error) {
	var payload string
	query := `SELECT payload FROM schedules ORDER BY created_at DESC LIMIT 1`
	if err := r.db.QueryRowContext(ctx, query).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading latest schedule: %w", err)
	}
	return UnmarshalSchedule([]byte(payload))
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting schedule %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
