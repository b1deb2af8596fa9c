package memory

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Task is a user reminder item. Due is nil when no reminder is wanted;
// Reminded flips once the reminder sweeper has delivered it. Tasks are never
// auto-deleted.
type Task struct {
	ID          string
	Title       string
	Description string
	Due         *time.Time
	Completed   bool
	Reminded    bool
	CreatedAt   time.Time
}

func NewTask(title, description string, now time.Time) *Task {
	return &Task{
		ID:          ulid.Make().String(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
	}
}
