package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/testutil"
)

func timedTask(id string, date domain.Date, startMin, endMin int) domain.Task {
	t := domain.Task{
		ID:           id,
		OriginalKind: domain.OriginalTimeBlock,
		Kind:         domain.KindTimeBlock,
		Title:        id,
		Date:         date,
		Priority:     domain.PriorityNormal,
	}
	t.SetStartMinutes(startMin)
	t.SetEndMinutes(endMin)
	return t
}

func TestScheduler_Upcoming(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}
	today := domain.DateOf(now)

	s := NewScheduler(15*time.Minute, clock)
	s.OnUpdate([]domain.Task{
		timedTask("soon", today, 9*60+10, 9*60+40),
		timedTask("later", today, 11*60, 12*60),
		timedTask("started", today, 8*60+50, 9*60+30),
	})

	got := s.Upcoming()
	require.Len(t, got, 1)
	assert.Equal(t, "soon", got[0].ID)
}

func TestScheduler_UpcomingSkipsDoneAndSkipped(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}
	today := domain.DateOf(now)

	done := timedTask("done", today, 9*60+5, 9*60+20)
	done.IsCompleted = true
	skipped := timedTask("skipped", today, 9*60+5, 9*60+20)
	skipped.IsSkipped = true

	s := NewScheduler(30*time.Minute, clock)
	s.OnUpdate([]domain.Task{done, skipped})

	assert.Empty(t, s.Upcoming())
}

func TestScheduler_Next(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}
	today := domain.DateOf(now)

	s := NewScheduler(15*time.Minute, clock)
	s.OnUpdate([]domain.Task{
		timedTask("afternoon", today, 14*60, 15*60),
		timedTask("morning", today, 10*60, 11*60),
		domain.Task{ID: "todo", Kind: domain.KindTodo, Title: "todo"},
	})

	next, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "morning", next.ID)
}

func TestScheduler_NextEmpty(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}

	s := NewScheduler(15*time.Minute, clock)
	s.OnUpdate([]domain.Task{timedTask("past", domain.DateOf(now), 9*60, 10*60)})

	_, ok := s.Next()
	assert.False(t, ok)
}

func TestScheduler_OnUpdateReplaces(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	clock := &testutil.MockClock{NowTime: now}
	today := domain.DateOf(now)

	s := NewScheduler(time.Hour, clock)
	s.OnUpdate([]domain.Task{timedTask("old", today, 9*60+30, 10*60)})
	s.OnUpdate([]domain.Task{timedTask("new", today, 9*60+30, 10*60)})

	got := s.Upcoming()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}
