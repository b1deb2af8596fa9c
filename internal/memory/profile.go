// Package memory holds the per-session user profile: remembered facts,
// interests, and the task list. Nothing here survives a session reset.
package memory

import (
	"strings"
	"time"
)

// Profile is the session-scoped user state. One conversation owns exactly
// one Profile; "new session" discards it.
type Profile struct {
	Name             string
	Facts            map[string]string
	Interests        []string
	Tasks            []*Task
	InteractionCount int
	SessionStart     time.Time
	LastSentiment    string
}

func NewProfile(now time.Time) *Profile {
	return &Profile{
		Name:          "Guest",
		Facts:         make(map[string]string),
		SessionStart:  now,
		LastSentiment: "neutral",
	}
}

// RememberFact stores a fact under a case-normalized key, last write wins.
func (p *Profile) RememberFact(key, value string) {
	p.Facts[strings.ToLower(key)] = value
}

// Fact returns the stored value and whether the key is known.
func (p *Profile) Fact(key string) (string, bool) {
	v, ok := p.Facts[strings.ToLower(key)]
	return v, ok
}

// AddInterest records a topic the user has asked about. Topics are
// normalized to lowercase and deduplicated, insertion order preserved.
func (p *Profile) AddInterest(topic string) {
	t := strings.ToLower(topic)
	for _, have := range p.Interests {
		if have == t {
			return
		}
	}
	p.Interests = append(p.Interests, t)
}

// PendingTasks returns uncompleted tasks sorted by due date ascending, with
// undated tasks after all dated ones regardless of creation order.
func (p *Profile) PendingTasks() []*Task {
	var out []*Task
	for _, t := range p.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	// Insertion sort keeps equal elements stable; task lists are tiny.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && taskBefore(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func taskBefore(a, b *Task) bool {
	switch {
	case a.Due == nil:
		return false
	case b.Due == nil:
		return true
	default:
		return a.Due.Before(*b.Due)
	}
}
