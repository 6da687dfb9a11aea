// Package contract holds the result DTOs exchanged between the session
// service and its callers (CLI shell, script runner).
package contract

import (
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// AvailabilityEntry is one date/capacity pair for listing output.
type AvailabilityEntry struct {
	Date  string
	Hours float64
}

// CommandResult is the outcome of executing one DSL command. Failed
// commands (state errors, validation failures) are reported here with
// Success=false rather than as Go errors; only parse errors surface as
// typed errors from the parser.
type CommandResult struct {
	Success bool
	Kind    string
	Message string

	// Populated per command kind; nil otherwise.
	ValidationErrors []string
	Courses          []domain.CourseSpec
	Availability     []AvailabilityEntry
	Schedule         *domain.Schedule
	History          []domain.HistoryEntry

	// SavedTo carries the persistence handle after a generate.
	SavedTo string
}

// Failure builds a failed result with a message.
func Failure(kind, message string) *CommandResult {
	return &CommandResult{Success: false, Kind: kind, Message: message}
}

// Success builds a successful result with a message.
func Success(kind, message string) *CommandResult {
	return &CommandResult{Success: true, Kind: kind, Message: message}
}
