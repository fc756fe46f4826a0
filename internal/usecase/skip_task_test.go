package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipTask_SetsFlagAndReason(t *testing.T) {
	timeline := domain.NewTimeline()
	guard := domain.NewEditGuard()
	task := timeBlock("tb-1", 9*60, 10*60)
	task.IsCompleted = true
	timeline.Replace([]domain.Task{task})

	writer := &testutil.MockWriter{}
	uc := NewSkipTask(timeline, guard, writer, NewAggregateTasks(nil, timeline, guard, discardLogger()), discardLogger())

	out, err := uc.Execute(context.Background(), SkipTaskInput{UserID: "u1", TaskID: "tb-1", Reason: "double-booked"})

	require.NoError(t, err)
	assert.True(t, out.Task.IsSkipped)
	assert.Equal(t, "double-booked", out.Task.SkipReason)
	assert.True(t, out.Task.IsCompleted, "skipping must not clear completion")
	assert.Equal(t, []string{"double-booked"}, writer.Skipped)
	assert.False(t, guard.IsGuarded("tb-1"))
}

func TestSkipTask_FailedWriteRollsBack(t *testing.T) {
	timeline := domain.NewTimeline()
	guard := domain.NewEditGuard()
	timeline.Replace([]domain.Task{timeBlock("tb-1", 9*60, 10*60)})

	src := &testutil.MockSource{
		KindVal: domain.OriginalTimeBlock,
		Tasks:   []domain.Task{timeBlock("tb-1", 9*60, 10*60)},
	}
	writer := &testutil.MockWriter{SkippedErr: errors.New("500")}
	uc := NewSkipTask(timeline, guard, writer, NewAggregateTasks([]domain.TaskSource{src}, timeline, guard, discardLogger()), discardLogger())

	_, err := uc.Execute(context.Background(), SkipTaskInput{UserID: "u1", TaskID: "tb-1", Reason: "sick"})

	require.ErrorIs(t, err, domain.ErrSync)
	got, _ := timeline.Get("tb-1")
	assert.False(t, got.IsSkipped)
	assert.False(t, guard.IsGuarded("tb-1"))
}
