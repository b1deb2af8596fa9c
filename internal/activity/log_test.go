package activity

import (
	"fmt"
	"testing"
	"time"
)

func TestEntryString(t *testing.T) {
	e := Entry{
		Timestamp:   time.Date(2026, 6, 10, 9, 5, 3, 0, time.UTC),
		Category:    Task,
		Description: "Task added: 'update router firmware' (no reminder).",
	}
	want := "[09:05:03] [Task] Task added: 'update router firmware' (no reminder)."
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAppendAndReverseOrder(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	l := NewLog(clock)
	l.Append(Chat, "first")
	l.Append(Quiz, "second")
	l.Append(System, "third")

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	got := l.Entries()
	if got[0].Description != "third" || got[1].Description != "second" || got[2].Description != "first" {
		t.Errorf("Entries() not most-recent-first: %v", got)
	}
	if !got[0].Timestamp.After(got[2].Timestamp) {
		t.Error("timestamps not monotonic")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := NewLog(nil)
	l.Append(Chat, "original")
	got := l.Entries()
	got[0].Description = "mutated"
	if l.Entries()[0].Description != "original" {
		t.Error("Entries() exposed internal storage")
	}
}

func TestNewLogDefaultsToWallClock(t *testing.T) {
	l := NewLog(nil)
	before := time.Now()
	l.Append(Chat, "x")
	ts := l.Entries()[0].Timestamp
	if ts.Before(before.Add(-time.Second)) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("default clock produced %v", ts)
	}
}

func TestPage(t *testing.T) {
	entries := make([]Entry, 12)
	for i := range entries {
		entries[i].Description = fmt.Sprintf("e%d", i)
	}

	tests := []struct {
		page, size int
		wantFirst  string
		wantLen    int
	}{
		{0, 5, "e0", 5},
		{1, 5, "e5", 5},
		{2, 5, "e10", 2},
		{3, 5, "", 0},
		{-1, 5, "", 0},
		{0, 20, "e0", 12},
	}
	for _, tt := range tests {
		got := Page(entries, tt.page, tt.size)
		if len(got) != tt.wantLen {
			t.Errorf("Page(%d, %d) len = %d, want %d", tt.page, tt.size, len(got), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && got[0].Description != tt.wantFirst {
			t.Errorf("Page(%d, %d)[0] = %q, want %q", tt.page, tt.size, got[0].Description, tt.wantFirst)
		}
	}

	if got := Page(nil, 0, 5); got != nil {
		t.Errorf("Page on empty log = %v, want nil", got)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
	}
	for _, tt := range tests {
		if got := PageCount(tt.n, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}
