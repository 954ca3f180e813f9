package model

import "time"

// HistoryEntry is one recorded raw search query. History is an in-memory,
// append-only log kept for the lifetime of the process; there is no
// eviction and no persistence.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	RecordedAt time.Time `json:"recorded_at"`
}
