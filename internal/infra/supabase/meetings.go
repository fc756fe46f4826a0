package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

const meetingsTable = "meetings"

// meetingRecord mirrors one row of the meetings table. Meetings carry
// a start time plus a duration in minutes instead of an end time.
type meetingRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	MeetingLink string `json:"meeting_link,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Completed   bool   `json:"completed"`
	Skipped     bool   `json:"skipped"`
	SkipReason  string `json:"skip_reason,omitempty"`
}

// decodeMeeting maps one raw row to the normalized entity. A missing
// or zero duration defaults to the minimum renderable slot; an end
// that would cross midnight clamps to 23:59.
func decodeMeeting(rec meetingRecord) (domain.Task, error) {
	if rec.ID == "" {
		return domain.Task{}, fmt.Errorf("%w: meeting without id", domain.ErrMalformedRecord)
	}
	date, err := domain.ParseDate(rec.Date)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	sh, sm, err := parseClock(rec.Time)
	if err != nil {
		return domain.Task{}, err
	}

	duration := rec.Duration
	if duration <= 0 {
		duration = domain.MinSlotMinutes
	}

	kind := domain.KindMeeting
	if rec.EventType == "social" {
		kind = domain.KindSocial
	}

	task := domain.Task{
		ID:           "mt-" + rec.ID,
		OriginalID:   rec.ID,
		OriginalKind: domain.OriginalMeeting,
		Kind:         kind,
		Title:        rec.Title,
		Description:  rec.Description,
		Date:         date,
		StartHour:    sh,
		StartMinute:  sm,
		Priority:     domain.PriorityNormal,
		IsCompleted:  rec.Completed,
		IsSkipped:    rec.Skipped,
		SkipReason:   rec.SkipReason,
		MeetingLink:  rec.MeetingLink,
	}
	task.SetEndMinutes(task.StartMinutes() + duration)
	return task, nil
}

// encodeMeeting builds the wire row for a create.
func encodeMeeting(task domain.Task, userID string) meetingRecord {
	eventType := ""
	if task.Kind == domain.KindSocial {
		eventType = "social"
	}
	duration := task.DurationMinutes()
	if duration <= 0 {
		duration = domain.MinSlotMinutes
	}
	return meetingRecord{
		UserID:      userID,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.Date.String(),
		Time:        formatClock(task.StartHour, task.StartMinute),
		Duration:    duration,
		MeetingLink: task.MeetingLink,
		EventType:   eventType,
		Completed:   task.IsCompleted,
		Skipped:     task.IsSkipped,
		SkipReason:  task.SkipReason,
	}
}

// MeetingSource adapts the meetings table to domain.TaskSource.
type MeetingSource struct {
	client *Client
}

// NewMeetingSource creates the adapter.
func NewMeetingSource(c *Client) *MeetingSource {
	return &MeetingSource{client: c}
}

// Kind returns the source table identity.
func (s *MeetingSource) Kind() domain.OriginalKind {
	return domain.OriginalMeeting
}

// Fetch lists the user's meetings. Malformed rows are dropped.
func (s *MeetingSource) Fetch(ctx context.Context, userID string) ([]domain.Task, error) {
	var recs []meetingRecord
	query := url.Values{"user_id": {eq(userID)}, "select": {"*"}}
	if err := s.client.get(ctx, meetingsTable, query, &recs); err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	tasks := make([]domain.Task, 0, len(recs))
	for _, rec := range recs {
		if task, err := decodeMeeting(rec); err == nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}
