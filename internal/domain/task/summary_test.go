//go:build unit

package task_test

import (
	"testing"
	"time"

	"firm-digest/internal/domain/task"
	"firm-digest/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(ts []task.Task) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Title)
	}
	return out
}

func TestSummarize(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	// 18:45 local on Jan 15
	now := time.Date(2025, 1, 15, 18, 45, 0, 0, ist)

	t.Run("success: buckets by local calendar day", func(t *testing.T) {
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("yesterday").Due(time.Date(2025, 1, 14, 12, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("this morning").Due(time.Date(2025, 1, 15, 9, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("tonight").Due(time.Date(2025, 1, 15, 23, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("tomorrow").Due(time.Date(2025, 1, 16, 10, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("next week").Due(time.Date(2025, 1, 22, 10, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("someday").Build(),
		}

		s := task.Summarize(now, tasks)

		assert.Equal(t, []string{"yesterday", "this morning"}, titles(s.Overdue))
		assert.Equal(t, []string{"this morning", "tonight"}, titles(s.Today))
		assert.Equal(t, []string{"tomorrow"}, titles(s.Tomorrow))
		assert.Equal(t, []string{"next week", "someday"}, titles(s.Remaining))
		assert.Equal(t, 6, s.TotalCount)
		assert.False(t, s.IsEmpty())
	})

	t.Run("success: day boundaries", func(t *testing.T) {
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("midnight today").Due(time.Date(2025, 1, 15, 0, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("midnight tomorrow").Due(time.Date(2025, 1, 16, 0, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("midnight day after").Due(time.Date(2025, 1, 17, 0, 0, 0, 0, ist)).Build(),
		}

		s := task.Summarize(now, tasks)

		assert.Equal(t, []string{"midnight today"}, titles(s.Today))
		assert.Equal(t, []string{"midnight tomorrow"}, titles(s.Tomorrow))
		assert.Equal(t, []string{"midnight day after"}, titles(s.Remaining))
	})

	t.Run("success: UTC instant is judged in the firm zone", func(t *testing.T) {
		// 20:00 UTC on Jan 15 is 01:30 on Jan 16 in Kolkata.
		due := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)
		s := task.Summarize(now, []task.Task{builder.NewTaskBuilder().Titled("late").Due(due).Build()})

		assert.Empty(t, s.Today)
		assert.Equal(t, []string{"late"}, titles(s.Tomorrow))
	})

	t.Run("success: status buckets are independent of due date", func(t *testing.T) {
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("review overdue").Status(task.StatusReadyForReview).
				Due(time.Date(2025, 1, 10, 0, 0, 0, 0, ist)).Build(),
			builder.NewTaskBuilder().Titled("waiting").Status(task.StatusAwaitingClientData).Build(),
			builder.NewTaskBuilder().Titled("done").Status(task.StatusFiledCompleted).
				Due(time.Date(2025, 1, 10, 0, 0, 0, 0, ist)).Build(),
		}

		s := task.Summarize(now, tasks)

		assert.Equal(t, []string{"review overdue"}, titles(s.Overdue))
		assert.Equal(t, []string{"review overdue"}, titles(s.Review))
		assert.Equal(t, []string{"waiting"}, titles(s.AwaitingClient))
		assert.Equal(t, 2, s.TotalCount, "filed_completed tasks are not counted")
	})

	t.Run("success: ordering by due date, then title, then id", func(t *testing.T) {
		due := time.Date(2025, 1, 20, 9, 0, 0, 0, ist)
		idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
		idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("no due").Status(task.StatusAwaitingClientData).Build(),
			builder.NewTaskBuilder().Titled("same").Due(due).With(func(t *task.Task) { t.ID = idB }).Status(task.StatusAwaitingClientData).Build(),
			builder.NewTaskBuilder().Titled("same").Due(due).With(func(t *task.Task) { t.ID = idA }).Status(task.StatusAwaitingClientData).Build(),
			builder.NewTaskBuilder().Titled("alpha").Due(due).Status(task.StatusAwaitingClientData).Build(),
			builder.NewTaskBuilder().Titled("earlier").Due(due.Add(-time.Hour)).Status(task.StatusAwaitingClientData).Build(),
		}

		s := task.Summarize(now, tasks)

		require.Len(t, s.AwaitingClient, 5)
		assert.Equal(t, []string{"earlier", "alpha", "same", "same", "no due"}, titles(s.AwaitingClient))
		assert.Equal(t, idA, s.AwaitingClient[2].ID)
		assert.Equal(t, idB, s.AwaitingClient[3].ID)
	})

	t.Run("success: undated task is counted and listed as remaining", func(t *testing.T) {
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("open ended").Build(),
			builder.NewTaskBuilder().Titled("undated review").Status(task.StatusReadyForReview).Build(),
		}

		s := task.Summarize(now, tasks)

		assert.Equal(t, 2, s.TotalCount)
		assert.Empty(t, s.Overdue)
		assert.Empty(t, s.Today)
		assert.Empty(t, s.Tomorrow)
		assert.Equal(t, []string{"open ended", "undated review"}, titles(s.Remaining))
		assert.Equal(t, []string{"undated review"}, titles(s.Review))
	})

	t.Run("success: empty input", func(t *testing.T) {
		s := task.Summarize(now, nil)
		assert.True(t, s.IsEmpty())
		assert.Empty(t, s.Overdue)
	})
}
