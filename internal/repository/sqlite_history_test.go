package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/testutil"
)

func TestHistoryRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := domain.HistoryEntry{
		EnteredAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Command:   `ADD SUBJECT "CS101" HOURS 20 PRIORITY HIGH`,
		Kind:      "ADD_SUBJECT",
	}
	second := domain.HistoryEntry{
		EnteredAt: time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC),
		Command:   "GENERATE SCHEDULE",
		Kind:      "GENERATE_SCHEDULE",
	}
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order is preserved.
	assert.Equal(t, first.Command, entries[0].Command)
	assert.Equal(t, second.Command, entries[1].Command)
	assert.Equal(t, "ADD_SUBJECT", entries[0].Kind)
	assert.True(t, entries[0].EnteredAt.Equal(first.EnteredAt))
}

func TestHistoryRepo_ListEmpty(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryRepo_Clear(t *testing.T) {
	repo := NewSQLiteHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, domain.HistoryEntry{
		EnteredAt: time.Now(), Command: "CLEAR ALL", Kind: "CLEAR_ALL",
	}))
	require.NoError(t, repo.Clear(ctx))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
