package domain

import "time"

// HistoryEntry records one executed DSL command.
type HistoryEntry struct {
	EnteredAt time.Time
	Command   string
	Kind      string
}
