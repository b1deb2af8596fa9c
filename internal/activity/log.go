// Package activity keeps the append-only, session-scoped activity log. The
// log is an explicit service object owned by the session; there is no
// process-wide singleton, and a new session starts empty.
package activity

import (
	"fmt"
	"time"
)

// Category labels a log entry.
type Category string

const (
	Chat   Category = "Chat"
	Task   Category = "Task"
	Quiz   Category = "Quiz"
	System Category = "System"
)

// Entry is one immutable log record.
type Entry struct {
	Timestamp   time.Time
	Category    Category
	Description string
}

// String renders the entry in the canonical [HH:mm:ss] [Category] form.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Timestamp.Format("15:04:05"), e.Category, e.Description)
}

// Log is the append-only record. The clock is injectable for tests.
type Log struct {
	entries []Entry
	now     func() time.Time
}

func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Append records an entry with the current wall-clock time. It never fails.
func (l *Log) Append(cat Category, description string) {
	l.entries = append(l.entries, Entry{Timestamp: l.now(), Category: cat, Description: description})
}

// Entries returns a copy in reverse-chronological order, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int { return len(l.entries) }

// Page slices one page out of an entry sequence. Pages are zero-based; a
// page past the end returns an empty slice so the caller can report "end of
// log" and reset its cursor.
func Page(entries []Entry, page, size int) []Entry {
	start := page * size
	if start < 0 || start >= len(entries) {
		return nil
	}
	end := start + size
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}

// PageCount returns the number of pages needed for n entries.
func PageCount(n, size int) int {
	return (n + size - 1) / size
}
