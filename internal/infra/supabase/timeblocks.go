package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

const timeBlocksTable = "time_blocks"

// timeBlockRecord mirrors one row of the time_blocks table.
type timeBlockRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BlockType   string `json:"block_type,omitempty"`
	Priority    string `json:"priority,omitempty"`
	IsCompleted bool   `json:"is_completed"`
	IsSkipped   bool   `json:"is_skipped"`
	SkipReason  string `json:"skip_reason,omitempty"`
}

// decodeTimeBlock maps one raw row to the normalized entity. The
// mapping is pure; a row with an unparseable date or time yields an
// error and is dropped by the caller so one bad row never aborts the
// pass.
func decodeTimeBlock(rec timeBlockRecord) (domain.Task, error) {
	if rec.ID == "" {
		return domain.Task{}, fmt.Errorf("%w: time block without id", domain.ErrMalformedRecord)
	}
	date, err := domain.ParseDate(rec.Date)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	sh, sm, err := parseClock(rec.StartTime)
	if err != nil {
		return domain.Task{}, err
	}
	eh, em, err := parseClock(rec.EndTime)
	if err != nil {
		return domain.Task{}, err
	}

	kind := domain.KindTimeBlock
	subtype := rec.BlockType
	if rec.BlockType == "social" {
		kind = domain.KindSocial
		subtype = ""
	}

	task := domain.Task{
		ID:           "tb-" + rec.ID,
		OriginalID:   rec.ID,
		OriginalKind: domain.OriginalTimeBlock,
		Kind:         kind,
		Subtype:      subtype,
		Title:        rec.Title,
		Description:  rec.Description,
		Notes:        rec.Notes,
		Date:         date,
		StartHour:    sh,
		StartMinute:  sm,
		EndHour:      eh,
		EndMinute:    em,
		Priority:     domain.ParsePriority(rec.Priority),
		IsCompleted:  rec.IsCompleted,
		IsSkipped:    rec.IsSkipped,
		SkipReason:   rec.SkipReason,
	}
	return task, nil
}

// encodeTimeBlock builds the wire row for a create.
func encodeTimeBlock(task domain.Task, userID string) timeBlockRecord {
	blockType := task.Subtype
	if task.Kind == domain.KindSocial {
		blockType = "social"
	}
	return timeBlockRecord{
		UserID:      userID,
		Title:       task.Title,
		Description: task.Description,
		Notes:       task.Notes,
		Date:        task.Date.String(),
		StartTime:   formatClock(task.StartHour, task.StartMinute),
		EndTime:     formatClock(task.EndHour, task.EndMinute),
		BlockType:   blockType,
		Priority:    string(task.Priority),
		IsCompleted: task.IsCompleted,
		IsSkipped:   task.IsSkipped,
		SkipReason:  task.SkipReason,
	}
}

// TimeBlockSource adapts the time_blocks table to domain.TaskSource.
type TimeBlockSource struct {
	client *Client
}

// NewTimeBlockSource creates the adapter.
func NewTimeBlockSource(c *Client) *TimeBlockSource {
	return &TimeBlockSource{client: c}
}

// Kind returns the source table identity.
func (s *TimeBlockSource) Kind() domain.OriginalKind {
	return domain.OriginalTimeBlock
}

// Fetch lists the user's time blocks. Malformed rows are dropped.
func (s *TimeBlockSource) Fetch(ctx context.Context, userID string) ([]domain.Task, error) {
	var recs []timeBlockRecord
	query := url.Values{"user_id": {eq(userID)}, "select": {"*"}}
	if err := s.client.get(ctx, timeBlocksTable, query, &recs); err != nil {
		return nil, fmt.Errorf("list time blocks: %w", err)
	}
	tasks := make([]domain.Task, 0, len(recs))
	for _, rec := range recs {
		if task, err := decodeTimeBlock(rec); err == nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}
