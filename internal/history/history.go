// Package history keeps the process-wide, append-only log of raw search
// queries. The log lives in memory for the lifetime of the service; it is
// never evicted and never persisted.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcbaptista/monument-search/model"
)

// Log is an append-only, in-memory search history. It implements the
// services.HistoryLog interface. Reads and writes are guarded by a mutex so
// concurrent HTTP callers are safe.
type Log struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
	size    prometheus.Gauge // optional, may be nil
}

// NewLog creates an empty history log. The gauge, if non-nil, tracks the
// number of recorded entries.
func NewLog(size prometheus.Gauge) *Log {
	return &Log{
		entries: make([]model.HistoryEntry, 0),
		size:    size,
	}
}

// Record appends one raw query string to the log and returns the created
// entry.
func (l *Log) Record(query string) model.HistoryEntry {
	entry := model.HistoryEntry{
		ID:         uuid.New().String(),
		Query:      query,
		RecordedAt: time.Now(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	size := len(l.entries)
	l.mu.Unlock()

	if l.size != nil {
		l.size.Set(float64(size))
	}
	return entry
}

// Entries returns a copy of all recorded entries in append order.
func (l *Log) Entries() []model.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]model.HistoryEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}
