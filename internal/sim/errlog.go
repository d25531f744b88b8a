package sim

import (
	"sync"
	"time"
)

// DefaultErrorLogSize bounds the diagnostic ring buffer.
const DefaultErrorLogSize = 100

// LogEntry is one recorded non-fatal issue.
type LogEntry struct {
	At      time.Time
	SimTime float64
	Kind    ErrorKind
	Message string
}

// ErrorLog is a bounded ring buffer of the most recent issues, queryable by
// the presentation layer. Writes past capacity overwrite the oldest entry.
type ErrorLog struct {
	mu      sync.Mutex
	entries []LogEntry
	max     int
	writeAt int
	full    bool
}

// NewErrorLog returns a log keeping the last max entries (DefaultErrorLogSize
// when max <= 0).
func NewErrorLog(max int) *ErrorLog {
	if max <= 0 {
		max = DefaultErrorLogSize
	}
	return &ErrorLog{entries: make([]LogEntry, max), max: max}
}

// Record appends an entry, evicting the oldest when full.
func (l *ErrorLog) Record(simTime float64, kind ErrorKind, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.writeAt] = LogEntry{At: time.Now(), SimTime: simTime, Kind: kind, Message: message}
	l.writeAt = (l.writeAt + 1) % l.max
	if l.writeAt == 0 {
		l.full = true
	}
}

// Entries returns a copy ordered oldest to newest.
func (l *ErrorLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.full {
		out := make([]LogEntry, l.writeAt)
		copy(out, l.entries[:l.writeAt])
		return out
	}
	out := make([]LogEntry, 0, l.max)
	out = append(out, l.entries[l.writeAt:]...)
	out = append(out, l.entries[:l.writeAt]...)
	return out
}

// Len reports the number of retained entries.
func (l *ErrorLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.full {
		return l.max
	}
	return l.writeAt
}

// Clear drops all entries.
func (l *ErrorLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeAt = 0
	l.full = false
}
