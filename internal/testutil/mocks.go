// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSource is a test double for domain.TaskSource.
type MockSource struct {
	KindVal domain.OriginalKind
	Tasks   []domain.Task
	Err     error

	mu    sync.Mutex
	calls int
}

// Kind returns the configured source kind.
func (m *MockSource) Kind() domain.OriginalKind {
	return m.KindVal
}

// Fetch returns a copy of the configured tasks or the configured error.
func (m *MockSource) Fetch(_ context.Context, _ string) ([]domain.Task, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	return out, nil
}

// Calls returns how many times Fetch ran.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockWriter is a test double for domain.TaskWriter. It records every
// write and returns the configured errors.
type MockWriter struct {
	RescheduleErr error
	CompletedErr  error
	SkippedErr    error
	DeleteErr     error
	CreateErr     error

	// CreateResult, when set, is returned from Create instead of the
	// echoed input.
	CreateResult *domain.Task

	Rescheduled []domain.Task
	Completed   []bool
	Skipped     []string
	Deleted     []domain.Task
	Created     []domain.Task
}

// Reschedule records the task and returns the configured error.
func (m *MockWriter) Reschedule(_ context.Context, task domain.Task) error {
	if m.RescheduleErr != nil {
		return m.RescheduleErr
	}
	m.Rescheduled = append(m.Rescheduled, task)
	return nil
}

// SetCompleted records the flag and returns the configured error.
func (m *MockWriter) SetCompleted(_ context.Context, _ domain.Task, completed bool) error {
	if m.CompletedErr != nil {
		return m.CompletedErr
	}
	m.Completed = append(m.Completed, completed)
	return nil
}

// SetSkipped records the reason and returns the configured error.
func (m *MockWriter) SetSkipped(_ context.Context, _ domain.Task, _ bool, reason string) error {
	if m.SkippedErr != nil {
		return m.SkippedErr
	}
	m.Skipped = append(m.Skipped, reason)
	return nil
}

// Delete records the task and returns the configured error.
func (m *MockWriter) Delete(_ context.Context, task domain.Task) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, task)
	return nil
}

// Create records the task and returns either CreateResult or the input
// with deterministic ids filled in.
func (m *MockWriter) Create(_ context.Context, task domain.Task, _ string) (domain.Task, error) {
	if m.CreateErr != nil {
		return domain.Task{}, m.CreateErr
	}
	m.Created = append(m.Created, task)
	if m.CreateResult != nil {
		return *m.CreateResult, nil
	}
	created := task
	created.OriginalID = "created-1"
	created.ID = string(task.OriginalKind) + "-created-1"
	return created, nil
}
