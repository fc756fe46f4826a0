package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// SkipTaskInput contains the parameters for skipping a task.
type SkipTaskInput struct {
	UserID string
	TaskID string
	Reason string
}

// SkipTaskOutput contains the skipped task.
type SkipTaskOutput struct {
	Task domain.Task
}

// SkipTask marks a task as skipped with an optional reason. Skipping
// does not touch the completion flag; both can be true at once.
type SkipTask struct {
	timeline *domain.Timeline
	guard    *domain.EditGuard
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewSkipTask creates a new SkipTask use case.
func NewSkipTask(timeline *domain.Timeline, guard *domain.EditGuard, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *SkipTask {
	return &SkipTask{timeline: timeline, guard: guard, writer: writer, resync: resync, logger: logger}
}

// Execute marks the task skipped and writes it back.
func (uc *SkipTask) Execute(ctx context.Context, in SkipTaskInput) (*SkipTaskOutput, error) {
	task, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("skip task %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	release := uc.guard.Hold(task.ID)
	defer release()

	uc.timeline.Apply(task.ID, func(t *domain.Task) {
		t.IsSkipped = true
		t.SkipReason = in.Reason
	})
	updated, _ := uc.timeline.Get(task.ID)

	err := uc.writer.SetSkipped(ctx, updated, true, in.Reason)
	release()
	if err != nil {
		rollbackByRefetch(ctx, uc.resync, in.UserID, "skip", err, uc.logger)
		return nil, fmt.Errorf("%w: skip task %s: %v", domain.ErrSync, in.TaskID, err)
	}

	return &SkipTaskOutput{Task: updated}, nil
}
