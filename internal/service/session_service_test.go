package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/parser"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/repository"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/testutil"
)

func newTestSession(t *testing.T) SessionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSessionService(
		repository.NewSQLiteScheduleRepo(database),
		repository.NewSQLiteHistoryRepo(database),
	)
}

func mustExecute(t *testing.T, s SessionService, command string) *contract.CommandResult {
	t.Helper()
	result, err := s.Execute(context.Background(), command)
	require.NoError(t, err, "command %q", command)
	return result
}

func buildPlan(t *testing.T, s SessionService) {
	t.Helper()
	mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 8 PRIORITY HIGH`)
	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-01 CAPACITY 5 HOURS`)
	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-02 CAPACITY 5 HOURS`)
	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-03 CAPACITY 5 HOURS`)
}

func TestExecute_AddSubject(t *testing.T) {
	s := newTestSession(t)

	result := mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 20 PRIORITY HIGH`)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "CS101")

	plan := s.CurrentPlan()
	require.Len(t, plan.Courses, 1)
	assert.Equal(t, 20.0, plan.Courses[0].WorkloadHours)
	assert.Equal(t, domain.PriorityHigh, plan.Courses[0].Priority)
}

func TestExecute_SetAvailabilityUpserts(t *testing.T) {
	s := newTestSession(t)

	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-01 CAPACITY 2 HOURS`)
	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-01 CAPACITY 6 HOURS`)

	assert.Equal(t, 6.0, s.CurrentPlan().AvailabilityOn("2025-06-01"))
}

func TestExecute_ParseErrorsSurfaceAsErrors(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Execute(context.Background(), "")
	var empty *parser.EmptyCommandError
	assert.ErrorAs(t, err, &empty)

	_, err = s.Execute(context.Background(), "FROBNICATE EVERYTHING")
	var syntax *parser.SyntaxError
	assert.ErrorAs(t, err, &syntax)
}

func TestExecute_GenerateWithEmptyPlan(t *testing.T) {
	s := newTestSession(t)

	result := mustExecute(t, s, "GENERATE SCHEDULE")
	assert.False(t, result.Success)
	assert.Equal(t, "No plan specified", result.Message)
}

func TestExecute_GenerateWithInvalidPlan(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 20 PRIORITY HIGH`)
	mustExecute(t, s, `SET AVAILABILITY ON 2025-06-01 CAPACITY 5 HOURS`)

	result := mustExecute(t, s, "GENERATE SCHEDULE")
	assert.False(t, result.Success)
	require.NotEmpty(t, result.ValidationErrors)

	joined := ""
	for _, e := range result.ValidationErrors {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "exceeds total availability")
	assert.Contains(t, joined, "15.0")
}

func TestExecute_GenerateProducesAndSavesSchedule(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)

	result := mustExecute(t, s, "GENERATE SCHEDULE")
	require.True(t, result.Success, "message: %s, validation: %v", result.Message, result.ValidationErrors)
	require.NotNil(t, result.Schedule)
	assert.NotEmpty(t, result.SavedTo)
	assert.Len(t, result.Schedule.Blocks, 4)

	assert.Same(t, result.Schedule, s.CurrentSchedule())
}

func TestExecute_ShowScheduleWithoutGenerate(t *testing.T) {
	s := newTestSession(t)

	result := mustExecute(t, s, "SHOW SCHEDULE")
	assert.False(t, result.Success)
	assert.Equal(t, "No schedule generated yet", result.Message)
}

func TestExecute_ShowScheduleAfterGenerate(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)
	mustExecute(t, s, "GENERATE SCHEDULE")

	result := mustExecute(t, s, "SHOW SCHEDULE")
	assert.True(t, result.Success)
	require.NotNil(t, result.Schedule)
}

func TestExecute_ListSubjectsAndAvailability(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)

	subjects := mustExecute(t, s, "LIST SUBJECTS")
	require.Len(t, subjects.Courses, 1)
	assert.Equal(t, "CS101", subjects.Courses[0].ID)

	avail := mustExecute(t, s, "LIST AVAILABILITY")
	require.Len(t, avail.Availability, 3)
	assert.Equal(t, "2025-06-01", avail.Availability[0].Date)
	assert.Equal(t, 5.0, avail.Availability[0].Hours)
}

func TestExecute_DeleteSubject(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 8 PRIORITY HIGH`)

	result := mustExecute(t, s, `DELETE SUBJECT "CS101"`)
	assert.True(t, result.Success)
	assert.Empty(t, s.CurrentPlan().Courses)

	// Deleting again is a state failure, not an error.
	result = mustExecute(t, s, `DELETE SUBJECT "CS101"`)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}

func TestExecute_UpdateSubject(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 8 PRIORITY HIGH`)

	mustExecute(t, s, `UPDATE SUBJECT "CS101" HOURS 12`)
	assert.Equal(t, 12.0, s.CurrentPlan().Course("CS101").WorkloadHours)

	mustExecute(t, s, `UPDATE SUBJECT "CS101" PRIORITY LOW`)
	assert.Equal(t, domain.PriorityLow, s.CurrentPlan().Course("CS101").Priority)

	result := mustExecute(t, s, `UPDATE SUBJECT "ghost" HOURS 1`)
	assert.False(t, result.Success)
}

func TestExecute_ClearCommands(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)
	mustExecute(t, s, "GENERATE SCHEDULE")

	mustExecute(t, s, "CLEAR SCHEDULE")
	assert.Nil(t, s.CurrentSchedule())

	mustExecute(t, s, "CLEAR SUBJECTS")
	assert.Empty(t, s.CurrentPlan().Courses)
	assert.NotEmpty(t, s.CurrentPlan().Availability)

	mustExecute(t, s, "CLEAR ALL")
	assert.Empty(t, s.CurrentPlan().Availability)

	history := mustExecute(t, s, "SHOW HISTORY")
	assert.Empty(t, history.History)
}

func TestExecute_HistoryRecordsCommands(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, `ADD SUBJECT "CS101" HOURS 8 PRIORITY HIGH`)
	mustExecute(t, s, "LIST SUBJECTS")

	result := mustExecute(t, s, "SHOW HISTORY")
	require.True(t, result.Success)
	require.Len(t, result.History, 2)
	assert.Equal(t, `ADD SUBJECT "CS101" HOURS 8 PRIORITY HIGH`, result.History[0].Command)
	assert.Equal(t, "ADD_SUBJECT", result.History[0].Kind)

	// SHOW HISTORY itself is not recorded.
	again := mustExecute(t, s, "SHOW HISTORY")
	assert.Len(t, again.History, 2)
}

func TestExecute_LoadScheduleFromHandle(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)
	generated := mustExecute(t, s, "GENERATE SCHEDULE")
	require.NotEmpty(t, generated.SavedTo)

	mustExecute(t, s, "CLEAR SCHEDULE")
	require.Nil(t, s.CurrentSchedule())

	result := mustExecute(t, s, `LOAD SCHEDULE "`+generated.SavedTo+`"`)
	require.True(t, result.Success, result.Message)
	require.NotNil(t, s.CurrentSchedule())
	assert.Len(t, s.CurrentSchedule().Blocks, 4)
}

func TestExecute_LoadScheduleFromFile(t *testing.T) {
	s := newTestSession(t)
	buildPlan(t, s)
	mustExecute(t, s, "GENERATE SCHEDULE")

	path := filepath.Join(t.TempDir(), "schedule_20250601_080000.json")
	require.NoError(t, repository.SaveScheduleFile(path, s.CurrentSchedule()))
	mustExecute(t, s, "CLEAR SCHEDULE")

	result := mustExecute(t, s, `LOAD SCHEDULE "`+path+`"`)
	require.True(t, result.Success, result.Message)
	assert.Len(t, s.CurrentSchedule().Blocks, 4)
}

func TestExecute_LoadScheduleUnknownHandle(t *testing.T) {
	s := newTestSession(t)

	result := mustExecute(t, s, `LOAD SCHEDULE "no-such-handle"`)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "no-such-handle")
}
