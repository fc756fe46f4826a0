package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/google/uuid"
)

// DuplicateTaskInput contains the parameters for duplicating a task.
type DuplicateTaskInput struct {
	UserID string
	TaskID string
}

// DuplicateTaskOutput contains the duplicated task.
type DuplicateTaskOutput struct {
	Task domain.Task
}

// DuplicateTask copies an existing task into a new record in the same
// source table, with the same slot and fields but its own identity and
// fresh completion/skip state.
type DuplicateTask struct {
	timeline *domain.Timeline
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewDuplicateTask creates a new DuplicateTask use case.
func NewDuplicateTask(timeline *domain.Timeline, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *DuplicateTask {
	return &DuplicateTask{timeline: timeline, writer: writer, resync: resync, logger: logger}
}

// Execute duplicates the task.
func (uc *DuplicateTask) Execute(ctx context.Context, in DuplicateTaskInput) (*DuplicateTaskOutput, error) {
	src, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("duplicate task %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	copyTask := src
	copyTask.ID = ""
	copyTask.OriginalID = ""
	copyTask.IsCompleted = false
	copyTask.IsSkipped = false
	copyTask.SkipReason = ""

	provisionalID := "pending-" + uuid.NewString()
	provisional := copyTask
	provisional.ID = provisionalID
	uc.timeline.Add(provisional)

	created, err := uc.writer.Create(ctx, copyTask, in.UserID)
	if err != nil {
		uc.timeline.Remove(provisionalID)
		rollbackByRefetch(ctx, uc.resync, in.UserID, "duplicate", err, uc.logger)
		return nil, fmt.Errorf("%w: duplicate task %s: %v", domain.ErrSync, in.TaskID, err)
	}

	uc.timeline.Rebind(provisionalID, created)
	return &DuplicateTaskOutput{Task: created}, nil
}
