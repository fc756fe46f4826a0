package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// ToggleCompleteInput contains the parameters for toggling completion.
type ToggleCompleteInput struct {
	UserID string
	TaskID string
}

// ToggleCompleteOutput contains the toggled task.
type ToggleCompleteOutput struct {
	Task domain.Task
}

// ToggleComplete flips a task's completion flag. Completion and skip
// are independent facts: toggling one never clears the other.
type ToggleComplete struct {
	timeline *domain.Timeline
	guard    *domain.EditGuard
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewToggleComplete creates a new ToggleComplete use case.
func NewToggleComplete(timeline *domain.Timeline, guard *domain.EditGuard, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *ToggleComplete {
	return &ToggleComplete{timeline: timeline, guard: guard, writer: writer, resync: resync, logger: logger}
}

// Execute flips the flag and writes it back.
func (uc *ToggleComplete) Execute(ctx context.Context, in ToggleCompleteInput) (*ToggleCompleteOutput, error) {
	task, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("toggle complete %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	release := uc.guard.Hold(task.ID)
	defer release()

	uc.timeline.Apply(task.ID, func(t *domain.Task) {
		t.IsCompleted = !t.IsCompleted
	})
	updated, _ := uc.timeline.Get(task.ID)

	err := uc.writer.SetCompleted(ctx, updated, updated.IsCompleted)
	release()
	if err != nil {
		rollbackByRefetch(ctx, uc.resync, in.UserID, "toggle-complete", err, uc.logger)
		return nil, fmt.Errorf("%w: toggle complete %s: %v", domain.ErrSync, in.TaskID, err)
	}

	return &ToggleCompleteOutput{Task: updated}, nil
}
