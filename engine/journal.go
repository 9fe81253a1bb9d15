package engine

import "sync"

// JournalEntry is one recorded gameplay event
type JournalEntry struct {
	Frame int64  `json:"frame"`
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
}

// Journal keeps the most recent gameplay events for the monitor
// Written by TelemetrySystem on the tick goroutine, read by HTTP handlers
type Journal struct {
	mu      sync.RWMutex
	entries []JournalEntry
	next    int
	full    bool
}

// NewJournal creates a journal holding up to capacity entries; capacity < 1 becomes 1
func NewJournal(capacity int) *Journal {
	if capacity < 1 {
		capacity = 1
	}
	return &Journal{entries: make([]JournalEntry, capacity)}
}

// Record appends an entry, overwriting the oldest when full
func (j *Journal) Record(e JournalEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[j.next] = e
	j.next = (j.next + 1) % len(j.entries)
	if j.next == 0 {
		j.full = true
	}
}

// Entries returns a copy, oldest first
func (j *Journal) Entries() []JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if !j.full {
		out := make([]JournalEntry, j.next)
		copy(out, j.entries[:j.next])
		return out
	}
	out := make([]JournalEntry, 0, len(j.entries))
	out = append(out, j.entries[j.next:]...)
	out = append(out, j.entries[:j.next]...)
	return out
}
