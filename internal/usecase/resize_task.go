package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/usecase/shared"
)

// ResizeTaskInput contains the parameters for resizing a task's slot.
type ResizeTaskInput struct {
	UserID       string
	TaskID       string
	DeltaMinutes int // raw drag delta on the end handle
}

// ResizeTaskOutput contains the result of a resize.
type ResizeTaskOutput struct {
	Task    domain.Task
	Applied bool // false for too-small drags and below-minimum durations
}

// ResizeTask changes a task's end time by a snapped delta. A resize
// that would shrink the slot under the 15-minute minimum is treated as
// "user didn't really mean it": the task is left unchanged and the
// call succeeds as a no-op.
type ResizeTask struct {
	timeline *domain.Timeline
	guard    *domain.EditGuard
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewResizeTask creates a new ResizeTask use case.
func NewResizeTask(timeline *domain.Timeline, guard *domain.EditGuard, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *ResizeTask {
	return &ResizeTask{timeline: timeline, guard: guard, writer: writer, resync: resync, logger: logger}
}

// Execute applies the resize.
func (uc *ResizeTask) Execute(ctx context.Context, in ResizeTaskInput) (*ResizeTaskOutput, error) {
	delta := shared.RoundDelta(in.DeltaMinutes)
	if delta == 0 {
		return &ResizeTaskOutput{Applied: false}, nil
	}

	task, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("resize task %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}
	if !task.HasTimeExtent() {
		return nil, fmt.Errorf("resize task %s: %w", in.TaskID, domain.ErrUntimedTask)
	}

	candidate := task
	if !shared.Extend(&candidate, delta) {
		return &ResizeTaskOutput{Task: task, Applied: false}, nil
	}

	release := uc.guard.Hold(task.ID)
	defer release()

	uc.timeline.Apply(task.ID, func(t *domain.Task) {
		shared.Extend(t, delta)
	})
	updated, _ := uc.timeline.Get(task.ID)

	err := uc.writer.Reschedule(ctx, updated)
	release()
	if err != nil {
		rollbackByRefetch(ctx, uc.resync, in.UserID, "resize", err, uc.logger)
		return nil, fmt.Errorf("%w: resize task %s: %v", domain.ErrSync, in.TaskID, err)
	}

	return &ResizeTaskOutput{Task: updated, Applied: true}, nil
}
