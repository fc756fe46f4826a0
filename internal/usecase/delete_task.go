package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	UserID string
	TaskID string
}

// DeleteTaskOutput contains the deleted task.
type DeleteTaskOutput struct {
	Task domain.Task
}

// DeleteTask removes a task locally, then deletes its source record.
// A failed remote delete restores the task via a full refetch.
type DeleteTask struct {
	timeline *domain.Timeline
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(timeline *domain.Timeline, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{timeline: timeline, writer: writer, resync: resync, logger: logger}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("delete task %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	uc.timeline.Remove(task.ID)

	if err := uc.writer.Delete(ctx, task); err != nil {
		rollbackByRefetch(ctx, uc.resync, in.UserID, "delete", err, uc.logger)
		return nil, fmt.Errorf("%w: delete task %s: %v", domain.ErrSync, in.TaskID, err)
	}

	return &DeleteTaskOutput{Task: task}, nil
}
