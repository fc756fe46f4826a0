package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

const todosTable = "personal_todos"

// todoRecord mirrors one row of the personal_todos table. To-dos have
// a due date but no time extent.
type todoRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	Title      string `json:"title"`
	Notes      string `json:"notes,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Completed  bool   `json:"completed"`
	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`
}

// decodeTodo maps one raw row to the normalized entity. A missing due
// date is allowed; an unparseable one is malformed.
func decodeTodo(rec todoRecord) (domain.Task, error) {
	if rec.ID == "" {
		return domain.Task{}, fmt.Errorf("%w: todo without id", domain.ErrMalformedRecord)
	}
	var date domain.Date
	if rec.DueDate != "" {
		var err error
		date, err = domain.ParseDate(rec.DueDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
		}
	}
	return domain.Task{
		ID:           "td-" + rec.ID,
		OriginalID:   rec.ID,
		OriginalKind: domain.OriginalTodo,
		Kind:         domain.KindTodo,
		Title:        rec.Title,
		Notes:        rec.Notes,
		Date:         date,
		Priority:     domain.ParsePriority(rec.Priority),
		IsCompleted:  rec.Completed,
		IsSkipped:    rec.Skipped,
		SkipReason:   rec.SkipReason,
	}, nil
}

// encodeTodo builds the wire row for a create.
func encodeTodo(task domain.Task, userID string) todoRecord {
	rec := todoRecord{
		UserID:     userID,
		Title:      task.Title,
		Notes:      task.Notes,
		Priority:   string(task.Priority),
		Completed:  task.IsCompleted,
		Skipped:    task.IsSkipped,
		SkipReason: task.SkipReason,
	}
	if !task.Date.IsZero() {
		rec.DueDate = task.Date.String()
	}
	return rec
}

// TodoSource adapts the personal_todos table to domain.TaskSource.
type TodoSource struct {
	client *Client
}

// NewTodoSource creates the adapter.
func NewTodoSource(c *Client) *TodoSource {
	return &TodoSource{client: c}
}

// Kind returns the source table identity.
func (s *TodoSource) Kind() domain.OriginalKind {
	return domain.OriginalTodo
}

// Fetch lists the user's to-dos. Malformed rows are dropped.
func (s *TodoSource) Fetch(ctx context.Context, userID string) ([]domain.Task, error) {
	var recs []todoRecord
	query := url.Values{"user_id": {eq(userID)}, "select": {"*"}}
	if err := s.client.get(ctx, todosTable, query, &recs); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	tasks := make([]domain.Task, 0, len(recs))
	for _, rec := range recs {
		if task, err := decodeTodo(rec); err == nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}
