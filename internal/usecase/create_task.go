package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/google/uuid"
)

// CreateTaskInput contains the normalized fields for a new task.
type CreateTaskInput struct {
	UserID          string
	Title           string
	Description     string
	Notes           string
	Kind            domain.Kind
	Subtype         string
	Date            domain.Date
	StartHour       int
	StartMinute     int
	DurationMinutes int
	Priority        domain.Priority
	MeetingLink     string
}

// CreateTaskOutput contains the created task with remote-assigned ids.
type CreateTaskOutput struct {
	Task domain.Task
}

// CreateTask inserts a new entity. A provisional task appears on the
// timeline in the same frame as the gesture; once the remote store
// returns the created row, the provisional entry is rebound to the
// real ids. A failed create removes the provisional entry and
// resynchronizes.
type CreateTask struct {
	timeline *domain.Timeline
	writer   domain.TaskWriter
	resync   *AggregateTasks
	logger   *slog.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(timeline *domain.Timeline, writer domain.TaskWriter, resync *AggregateTasks, logger *slog.Logger) *CreateTask {
	return &CreateTask{timeline: timeline, writer: writer, resync: resync, logger: logger}
}

// Execute validates the fields and creates the task.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	task, err := buildTask(in)
	if err != nil {
		return nil, err
	}

	provisionalID := "pending-" + uuid.NewString()
	provisional := task
	provisional.ID = provisionalID
	uc.timeline.Add(provisional)

	created, err := uc.writer.Create(ctx, task, in.UserID)
	if err != nil {
		uc.timeline.Remove(provisionalID)
		rollbackByRefetch(ctx, uc.resync, in.UserID, "create", err, uc.logger)
		return nil, fmt.Errorf("%w: create task: %v", domain.ErrSync, err)
	}

	uc.timeline.Rebind(provisionalID, created)
	return &CreateTaskOutput{Task: created}, nil
}

// buildTask normalizes the input into an entity, choosing the source
// table from the presentation kind. Social items have no table of
// their own; they are stored as meetings.
func buildTask(in CreateTaskInput) (domain.Task, error) {
	if in.Title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if !in.Kind.Valid() {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, string(in.Kind))
	}

	task := domain.Task{
		Kind:        in.Kind,
		Subtype:     in.Subtype,
		Title:       in.Title,
		Description: in.Description,
		Notes:       in.Notes,
		Date:        in.Date,
		Priority:    in.Priority,
		MeetingLink: in.MeetingLink,
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityNormal
	}

	switch in.Kind {
	case domain.KindTimeBlock:
		task.OriginalKind = domain.OriginalTimeBlock
	case domain.KindMeeting, domain.KindSocial:
		task.OriginalKind = domain.OriginalMeeting
	case domain.KindTodo:
		task.OriginalKind = domain.OriginalTodo
	}

	if in.Kind != domain.KindTodo {
		duration := in.DurationMinutes
		if duration < domain.MinSlotMinutes {
			duration = domain.MinSlotMinutes
		}
		start := in.StartHour*60 + in.StartMinute
		task.SetStartMinutes(start)
		task.SetEndMinutes(start + duration)
	}

	return task, nil
}
