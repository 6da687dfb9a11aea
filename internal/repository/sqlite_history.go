package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db *sql.DB
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(db *sql.DB) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, e domain.HistoryEntry) error {
	query := `INSERT INTO command_history (entered_at, command, kind) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.EnteredAt.Format(time.RFC3339Nano),
		e.Command,
		e.Kind,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	query := `SELECT entered_at, command, kind FROM command_history ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var enteredAt string
		if err := rows.Scan(&enteredAt, &e.Command, &e.Kind); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, enteredAt); err == nil {
			e.EnteredAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

func (r *SQLiteHistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM command_history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
