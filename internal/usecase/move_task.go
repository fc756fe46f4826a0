package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/usecase/shared"
)

// MoveTaskInput contains the parameters for moving a task in time.
type MoveTaskInput struct {
	UserID       string
	TaskID       string
	DeltaMinutes int // raw drag delta, snapped to the 15-minute grid
}

// MoveTaskOutput contains the result of a move.
type MoveTaskOutput struct {
	Task    domain.Task
	Applied bool // false when the drag was too small to mean anything
}

// MoveTask shifts a task's wall-clock slot by a snapped delta. The
// local timeline is updated optimistically before the remote write; a
// failed write triggers a full resynchronization instead of a precise
// rollback, accepting the visual snap-back as the price of not keeping
// an undo log.
type MoveTask struct {
	timeline *domain.Timeline
	guard    *domain.EditGuard
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(timeline *domain.Timeline, guard *domain.EditGuard, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *MoveTask {
	return &MoveTask{timeline: timeline, guard: guard, writer: writer, resync: resync, logger: logger}
}

// Execute applies the move.
func (uc *MoveTask) Execute(ctx context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	delta := shared.RoundDelta(in.DeltaMinutes)
	if delta == 0 {
		return &MoveTaskOutput{Applied: false}, nil
	}

	task, ok := uc.timeline.Get(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("move task %s: %w", in.TaskID, domain.ErrTaskNotFound)
	}
	if !task.HasTimeExtent() {
		return nil, fmt.Errorf("move task %s: %w", in.TaskID, domain.ErrUntimedTask)
	}

	release := uc.guard.Hold(task.ID)
	defer release()

	uc.timeline.Apply(task.ID, func(t *domain.Task) {
		shared.Shift(t, delta)
	})
	updated, _ := uc.timeline.Get(task.ID)

	err := uc.writer.Reschedule(ctx, updated)
	// The guard must be gone before a rollback fetch runs, or the
	// refetch would preserve the very values it is meant to revert.
	release()
	if err != nil {
		rollbackByRefetch(ctx, uc.resync, in.UserID, "move", err, uc.logger)
		return nil, fmt.Errorf("%w: move task %s: %v", domain.ErrSync, in.TaskID, err)
	}

	return &MoveTaskOutput{Task: updated, Applied: true}, nil
}
