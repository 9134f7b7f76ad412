//go:build unit

package digest_test

import (
	"strings"
	"testing"
	"time"

	"firm-digest/internal/domain/digest"
	"firm-digest/internal/domain/task"
	"firm-digest/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestSubject(t *testing.T) {
	now := time.Date(2025, 1, 15, 18, 30, 0, 0, kolkata(t))
	assert.Equal(t, "Your task digest for Wed, Jan 15, 2025", digest.Subject(now))
}

func TestRenderer_RenderIndividual(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 1, 15, 18, 30, 0, 0, loc)
	r := digest.NewRenderer(digest.Options{})

	t.Run("success: lists tasks with client, assignee and due date", func(t *testing.T) {
		s := task.Summarize(now, []task.Task{
			builder.NewTaskBuilder().Titled("GST return").
				Due(time.Date(2025, 1, 14, 10, 0, 0, 0, loc)).
				AssignedTo(builder.NewRecipientBuilder().ID, "Asha").Build(),
		})

		doc, err := r.RenderIndividual("Asha", now, s)

		require.NoError(t, err)
		assert.Equal(t, "Your task digest for Wed, Jan 15, 2025", doc.Subject)
		assert.Contains(t, doc.HTML, "Hello Asha,")
		assert.Contains(t, doc.HTML, "Overdue (1)")
		assert.Contains(t, doc.HTML, "<td>GST return</td><td>Sharma &amp; Co</td><td>Asha</td><td>Jan 14, 2025</td>")
		assert.Contains(t, doc.HTML, "No tasks waiting for review.")
		assert.NotContains(t, doc.HTML, "Due tomorrow")
	})

	t.Run("success: placeholders for missing values", func(t *testing.T) {
		s := task.Summarize(now, []task.Task{
			builder.NewTaskBuilder().Titled("  ").Status(task.StatusAwaitingClientData).
				With(func(t *task.Task) { t.ClientName = nil }).Build(),
		})

		doc, err := r.RenderIndividual("   ", now, s)

		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "Hello there,")
		assert.Contains(t, doc.HTML, "<td>Untitled task</td><td>No client</td><td>Unassigned</td><td>No due date</td>")
		assert.Contains(t, doc.HTML, "No overdue tasks. Nice work.")
	})

	t.Run("success: escapes user data", func(t *testing.T) {
		s := task.Summarize(now, []task.Task{
			builder.NewTaskBuilder().Titled("<script>alert(1)</script>").Build(),
		})

		doc, err := r.RenderIndividual("Asha", now, s)

		require.NoError(t, err)
		assert.NotContains(t, doc.HTML, "<script>")
		assert.Contains(t, doc.HTML, "<td>&lt;script&gt;alert(1)&lt;/script&gt;</td>")
		assert.Contains(t, doc.HTML, "Coming up")
	})

	t.Run("success: identical input renders identical bytes", func(t *testing.T) {
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("b").Due(time.Date(2025, 1, 16, 9, 0, 0, 0, loc)).Build(),
			builder.NewTaskBuilder().Titled("a").Due(time.Date(2025, 1, 16, 9, 0, 0, 0, loc)).Build(),
		}

		first, err := r.RenderIndividual("Asha", now, task.Summarize(now, tasks))
		require.NoError(t, err)
		second, err := r.RenderIndividual("Asha", now, task.Summarize(now, []task.Task{tasks[1], tasks[0]}))
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Less(t, strings.Index(first.HTML, "<td>a</td>"), strings.Index(first.HTML, "<td>b</td>"))
	})

	t.Run("success: dashboard link", func(t *testing.T) {
		withLink := digest.NewRenderer(digest.Options{AppBaseURL: " https://app.example/dashboard "})

		doc, err := withLink.RenderIndividual("Asha", now, task.Summary{})

		require.NoError(t, err)
		assert.Contains(t, doc.HTML, `<a href="https://app.example/dashboard">`)
	})
}

func TestRenderer_RenderAggregate(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 1, 15, 18, 30, 0, 0, loc)
	r := digest.NewRenderer(digest.Options{})

	personal := task.Summarize(now, []task.Task{
		builder.NewTaskBuilder().Titled("Audit plan").Due(time.Date(2025, 1, 15, 21, 0, 0, 0, loc)).Build(),
	})
	firm := task.Summarize(now, []task.Task{
		builder.NewTaskBuilder().Titled("Audit plan").Due(time.Date(2025, 1, 15, 21, 0, 0, 0, loc)).Build(),
		builder.NewTaskBuilder().Titled("TDS filing").Status(task.StatusReadyForReview).Build(),
	})

	doc, err := r.RenderAggregate("Priya", now, personal, firm)

	require.NoError(t, err)
	yours := strings.Index(doc.HTML, "Your tasks")
	overview := strings.Index(doc.HTML, "Full firm overview")
	require.NotEqual(t, -1, yours)
	require.NotEqual(t, -1, overview)
	assert.Less(t, yours, overview, "personal block comes first")

	assert.Equal(t, 1, strings.Count(doc.HTML, "Ready for review"), "only the firm block lists review")
	assert.Greater(t, strings.Index(doc.HTML, "<td>TDS filing</td>"), overview)
	assert.Contains(t, doc.HTML, "Open tasks: 1")
	assert.Contains(t, doc.HTML, "Open tasks: 2")
}
