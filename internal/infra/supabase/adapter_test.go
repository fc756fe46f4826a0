package supabase

import (
	"testing"
	"time"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimeBlock(t *testing.T) {
	rec := timeBlockRecord{
		ID:          "42",
		Title:       "Deep work",
		Date:        "2026-06-01",
		StartTime:   "09:00:00",
		EndTime:     "10:30:00",
		BlockType:   "focus",
		Priority:    "high",
		IsCompleted: true,
	}

	task, err := decodeTimeBlock(rec)
	require.NoError(t, err)
	assert.Equal(t, "tb-42", task.ID)
	assert.Equal(t, "42", task.OriginalID)
	assert.Equal(t, domain.OriginalTimeBlock, task.OriginalKind)
	assert.Equal(t, domain.KindTimeBlock, task.Kind)
	assert.Equal(t, "focus", task.Subtype)
	assert.Equal(t, domain.Date{Year: 2026, Month: time.June, Day: 1}, task.Date)
	assert.Equal(t, 9*60, task.StartMinutes())
	assert.Equal(t, 10*60+30, task.EndMinutes())
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.True(t, task.IsCompleted)
}

func TestDecodeTimeBlock_SocialBlockType(t *testing.T) {
	rec := timeBlockRecord{ID: "7", Title: "Coffee", Date: "2026-06-01", StartTime: "15:00", EndTime: "15:30", BlockType: "social"}

	task, err := decodeTimeBlock(rec)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSocial, task.Kind)
	assert.Equal(t, domain.OriginalTimeBlock, task.OriginalKind, "write-back routing must keep the source table")
}

func TestDecodeTimeBlock_MalformedRows(t *testing.T) {
	bad := []timeBlockRecord{
		{Title: "no id", Date: "2026-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "1", Date: "June 1st", StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", Date: "2026-06-01", StartTime: "nine", EndTime: "10:00"},
		{ID: "3", Date: "2026-06-01", StartTime: "09:00", EndTime: "25:00"},
	}
	for _, rec := range bad {
		_, err := decodeTimeBlock(rec)
		assert.ErrorIs(t, err, domain.ErrMalformedRecord, "%+v", rec)
	}
}

func TestDecodeMeeting(t *testing.T) {
	rec := meetingRecord{
		ID:          "m1",
		Title:       "Standup",
		Date:        "2026-06-01",
		Time:        "10:00:00",
		Duration:    30,
		MeetingLink: "https://meet.example.com/abc",
	}

	task, err := decodeMeeting(rec)
	require.NoError(t, err)
	assert.Equal(t, "mt-m1", task.ID)
	assert.Equal(t, domain.OriginalMeeting, task.OriginalKind)
	assert.Equal(t, domain.KindMeeting, task.Kind)
	assert.Equal(t, 10*60, task.StartMinutes())
	assert.Equal(t, 10*60+30, task.EndMinutes())
	assert.Equal(t, "https://meet.example.com/abc", task.MeetingLink)
}

func TestDecodeMeeting_MissingDurationDefaultsToMinimumSlot(t *testing.T) {
	rec := meetingRecord{ID: "m2", Title: "Quick chat", Date: "2026-06-01", Time: "14:00"}

	task, err := decodeMeeting(rec)
	require.NoError(t, err)
	assert.Equal(t, domain.MinSlotMinutes, task.DurationMinutes())
}

func TestDecodeMeeting_EndClampsAtMidnight(t *testing.T) {
	rec := meetingRecord{ID: "m3", Title: "Late call", Date: "2026-06-01", Time: "23:30", Duration: 90}

	task, err := decodeMeeting(rec)
	require.NoError(t, err)
	assert.Equal(t, domain.EndOfDayMinutes, task.EndMinutes(), "past-midnight ends clamp to 23:59")
}

func TestDecodeMeeting_SocialEventType(t *testing.T) {
	rec := meetingRecord{ID: "m4", Title: "Dinner", Date: "2026-06-01", Time: "19:00", Duration: 120, EventType: "social"}

	task, err := decodeMeeting(rec)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSocial, task.Kind)
	assert.Equal(t, domain.OriginalMeeting, task.OriginalKind)
}

func TestDecodeTodo(t *testing.T) {
	task, err := decodeTodo(todoRecord{ID: "t1", Title: "Buy milk", DueDate: "2026-06-02", Priority: "low", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "td-t1", task.ID)
	assert.Equal(t, domain.KindTodo, task.Kind)
	assert.False(t, task.HasTimeExtent())
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.True(t, task.IsCompleted)

	// Due date is optional.
	undated, err := decodeTodo(todoRecord{ID: "t2", Title: "Someday"})
	require.NoError(t, err)
	assert.True(t, undated.Date.IsZero())

	_, err = decodeTodo(todoRecord{ID: "t3", Title: "Bad", DueDate: "tomorrow"})
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	h, m, err = parseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	for _, bad := range []string{"", "noon", "24:00", "12:60"} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "09:05:00", formatClock(9, 5))
}
