package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFixture(writer *testutil.MockWriter) (*CreateTask, *domain.Timeline) {
	timeline := domain.NewTimeline()
	guard := domain.NewEditGuard()
	resync := NewAggregateTasks(nil, timeline, guard, discardLogger())
	return NewCreateTask(timeline, writer, resync, discardLogger()), timeline
}

func TestCreateTask_CreatesAndAdoptsRemoteIDs(t *testing.T) {
	writer := &testutil.MockWriter{}
	uc, timeline := createFixture(writer)

	out, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID:          "u1",
		Title:           "Deep work",
		Kind:            domain.KindTimeBlock,
		Subtype:         "focus",
		Date:            domain.Date{Year: 2026, Month: time.June, Day: 1},
		StartHour:       9,
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, "created-1", out.Task.OriginalID)
	assert.Equal(t, domain.OriginalTimeBlock, out.Task.OriginalKind)
	assert.Equal(t, 9*60, out.Task.StartMinutes())
	assert.Equal(t, 10*60, out.Task.EndMinutes())

	got, ok := timeline.Get(out.Task.ID)
	require.True(t, ok, "created task must be on the timeline")
	assert.Equal(t, "Deep work", got.Title)
	for _, task := range timeline.Snapshot() {
		assert.False(t, strings.HasPrefix(task.ID, "pending-"), "no provisional entry may remain")
	}
}

func TestCreateTask_CreateScenarioLayout(t *testing.T) {
	// An empty day plus a 09:00-10:00 create yields exactly
	// one laid-out entity at column 0 of width 1.
	uc, timeline := createFixture(&testutil.MockWriter{})
	day := domain.Date{Year: 2026, Month: time.June, Day: 1}

	_, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID: "u1", Title: "Planning", Kind: domain.KindTimeBlock,
		Date: day, StartHour: 9, DurationMinutes: 60,
	})
	require.NoError(t, err)

	layouts := domain.LayoutDay(timeline.Day(day))
	require.Len(t, layouts, 1)
	assert.Equal(t, 0, layouts[0].Column)
	assert.Equal(t, 1, layouts[0].TotalColumns)
}

func TestCreateTask_SocialWritesToMeetingTable(t *testing.T) {
	writer := &testutil.MockWriter{}
	uc, _ := createFixture(writer)

	out, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID: "u1", Title: "Team lunch", Kind: domain.KindSocial,
		Date: domain.Date{Year: 2026, Month: time.June, Day: 1}, StartHour: 12, DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.KindSocial, out.Task.Kind)
	assert.Equal(t, domain.OriginalMeeting, out.Task.OriginalKind)
}

func TestCreateTask_DefaultsAndValidation(t *testing.T) {
	writer := &testutil.MockWriter{}
	uc, _ := createFixture(writer)

	_, err := uc.Execute(context.Background(), CreateTaskInput{UserID: "u1", Kind: domain.KindTodo})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), CreateTaskInput{UserID: "u1", Title: "x", Kind: domain.Kind("errand")})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	// A zero duration defaults to the minimum renderable slot.
	out, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID: "u1", Title: "Standup", Kind: domain.KindMeeting,
		Date: domain.Date{Year: 2026, Month: time.June, Day: 1}, StartHour: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MinSlotMinutes, out.Task.DurationMinutes())
	assert.Equal(t, domain.PriorityNormal, out.Task.Priority)
}

func TestCreateTask_FailedWriteRemovesProvisional(t *testing.T) {
	writer := &testutil.MockWriter{CreateErr: errors.New("422")}
	uc, timeline := createFixture(writer)

	_, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID: "u1", Title: "Doomed", Kind: domain.KindTimeBlock,
		Date: domain.Date{Year: 2026, Month: time.June, Day: 1}, StartHour: 9, DurationMinutes: 30,
	})

	require.ErrorIs(t, err, domain.ErrSync)
	assert.Empty(t, timeline.Snapshot())
}

func TestDuplicateTask_CopiesSlotResetsState(t *testing.T) {
	timeline := domain.NewTimeline()
	guard := domain.NewEditGuard()
	src := timeBlock("tb-1", 9*60, 10*60)
	src.IsCompleted = true
	src.IsSkipped = true
	src.SkipReason = "old reason"
	timeline.Replace([]domain.Task{src})

	writer := &testutil.MockWriter{}
	uc := NewDuplicateTask(timeline, writer, NewAggregateTasks(nil, timeline, guard, discardLogger()), discardLogger())

	out, err := uc.Execute(context.Background(), DuplicateTaskInput{UserID: "u1", TaskID: "tb-1"})

	require.NoError(t, err)
	assert.NotEqual(t, "tb-1", out.Task.ID)
	assert.Equal(t, src.Title, out.Task.Title)
	assert.Equal(t, src.StartMinutes(), out.Task.StartMinutes())
	assert.Equal(t, domain.OriginalTimeBlock, out.Task.OriginalKind)
	assert.False(t, out.Task.IsCompleted)
	assert.False(t, out.Task.IsSkipped)
	assert.Len(t, timeline.Snapshot(), 2)
}

func TestDuplicateTask_NotFound2(t *testing.T) {
	timeline := domain.NewTimeline()
	guard := domain.NewEditGuard()
	uc := NewDuplicateTask(timeline, &testutil.MockWriter{}, NewAggregateTasks(nil, timeline, guard, discardLogger()), discardLogger())

	_, err := uc.Execute(context.Background(), DuplicateTaskInput{UserID: "u1", TaskID: "nope"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
