package domain

import (
	"context"
	"time"
)

// TaskSource loads one source table's records for a user and
// normalizes them. Implementations drop malformed records instead of
// failing the fetch; a failed fetch never aborts the whole aggregation.
type TaskSource interface {
	// Kind returns the source table this adapter reads.
	Kind() OriginalKind

	// Fetch lists the user's records and maps them to normalized tasks.
	Fetch(ctx context.Context, userID string) ([]Task, error)
}

// TaskWriter persists mutation intents to the remote store. The target
// table is always derived from Task.OriginalKind, never from Kind: a
// meeting rendered as a social item still writes back to the meetings
// table.
type TaskWriter interface {
	// Reschedule writes the task's current wall-clock start/end.
	Reschedule(ctx context.Context, task Task) error

	// SetCompleted writes the completion flag.
	SetCompleted(ctx context.Context, task Task, completed bool) error

	// SetSkipped writes the skip flag and reason.
	SetSkipped(ctx context.Context, task Task, skipped bool, reason string) error

	// Delete removes the task's source record.
	Delete(ctx context.Context, task Task) error

	// Create inserts a new record for the user and returns the task
	// with the ids the remote assigned.
	Create(ctx context.Context, task Task, userID string) (Task, error)
}

// SnapshotStore caches the last published timeline locally so the UI
// can render before the first remote pass completes.
type SnapshotStore interface {
	Save(userID string, tasks []Task) error
	Load(userID string) ([]Task, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
