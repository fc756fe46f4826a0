package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// Ensure Store implements domain.TaskWriter.
var _ domain.TaskWriter = (*Store)(nil)

// Store writes mutation intents back to the remote tables. Every
// operation routes from Task.OriginalKind: a meeting rendered as a
// social item still writes to the meetings table.
type Store struct {
	client *Client
}

// NewStore creates a Store on the given client.
func NewStore(c *Client) *Store {
	return &Store{client: c}
}

func tableFor(kind domain.OriginalKind) (string, error) {
	switch kind {
	case domain.OriginalTimeBlock:
		return timeBlocksTable, nil
	case domain.OriginalMeeting:
		return meetingsTable, nil
	case domain.OriginalTodo:
		return todosTable, nil
	}
	return "", fmt.Errorf("%w: original kind %q", domain.ErrInvalidKind, string(kind))
}

func idFilter(task domain.Task) url.Values {
	return url.Values{"id": {eq(task.OriginalID)}}
}

// Reschedule writes the task's wall-clock slot in the shape its table
// expects: start/end times for time blocks, start time plus duration
// for meetings.
func (s *Store) Reschedule(ctx context.Context, task domain.Task) error {
	switch task.OriginalKind {
	case domain.OriginalTimeBlock:
		body := map[string]any{
			"start_time": formatClock(task.StartHour, task.StartMinute),
			"end_time":   formatClock(task.EndHour, task.EndMinute),
		}
		return s.client.patch(ctx, timeBlocksTable, idFilter(task), body)
	case domain.OriginalMeeting:
		body := map[string]any{
			"time":     formatClock(task.StartHour, task.StartMinute),
			"duration": task.DurationMinutes(),
		}
		return s.client.patch(ctx, meetingsTable, idFilter(task), body)
	case domain.OriginalTodo:
		return fmt.Errorf("reschedule: %w", domain.ErrUntimedTask)
	}
	return fmt.Errorf("reschedule: %w: %q", domain.ErrInvalidKind, string(task.OriginalKind))
}

// SetCompleted writes the completion flag under its table's column
// name.
func (s *Store) SetCompleted(ctx context.Context, task domain.Task, completed bool) error {
	table, err := tableFor(task.OriginalKind)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	column := "completed"
	if task.OriginalKind == domain.OriginalTimeBlock {
		column = "is_completed"
	}
	return s.client.patch(ctx, table, idFilter(task), map[string]any{column: completed})
}

// SetSkipped writes the skip flag and reason.
func (s *Store) SetSkipped(ctx context.Context, task domain.Task, skipped bool, reason string) error {
	table, err := tableFor(task.OriginalKind)
	if err != nil {
		return fmt.Errorf("set skipped: %w", err)
	}
	body := map[string]any{"skip_reason": reason}
	if task.OriginalKind == domain.OriginalTimeBlock {
		body["is_skipped"] = skipped
	} else {
		body["skipped"] = skipped
	}
	return s.client.patch(ctx, table, idFilter(task), body)
}

// Delete removes the task's source record. No body is sent.
func (s *Store) Delete(ctx context.Context, task domain.Task) error {
	table, err := tableFor(task.OriginalKind)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return s.client.delete(ctx, table, idFilter(task))
}

// Create inserts the full normalized field set plus user_id into the
// task's table and returns the entity rebuilt from the row the remote
// assigned ids to.
func (s *Store) Create(ctx context.Context, task domain.Task, userID string) (domain.Task, error) {
	switch task.OriginalKind {
	case domain.OriginalTimeBlock:
		var rows []timeBlockRecord
		if err := s.client.post(ctx, timeBlocksTable, encodeTimeBlock(task, userID), &rows); err != nil {
			return domain.Task{}, fmt.Errorf("create time block: %w", err)
		}
		if len(rows) == 0 {
			return domain.Task{}, fmt.Errorf("create time block: empty representation")
		}
		return decodeTimeBlock(rows[0])
	case domain.OriginalMeeting:
		var rows []meetingRecord
		if err := s.client.post(ctx, meetingsTable, encodeMeeting(task, userID), &rows); err != nil {
			return domain.Task{}, fmt.Errorf("create meeting: %w", err)
		}
		if len(rows) == 0 {
			return domain.Task{}, fmt.Errorf("create meeting: empty representation")
		}
		return decodeMeeting(rows[0])
	case domain.OriginalTodo:
		var rows []todoRecord
		if err := s.client.post(ctx, todosTable, encodeTodo(task, userID), &rows); err != nil {
			return domain.Task{}, fmt.Errorf("create todo: %w", err)
		}
		if len(rows) == 0 {
			return domain.Task{}, fmt.Errorf("create todo: empty representation")
		}
		return decodeTodo(rows[0])
	}
	return domain.Task{}, fmt.Errorf("create: %w: %q", domain.ErrInvalidKind, string(task.OriginalKind))
}
