//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"firm-digest/internal/domain/digest"
	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/job"
	"firm-digest/internal/domain/recipient"
	"firm-digest/internal/domain/task"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/pkg/ptr"
	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/usecase/shared"
	"firm-digest/tests/common/builder"
	sharedmock "firm-digest/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRetry = job.RetryPolicy{MaxAttempts: 3, Backoff: 10 * time.Minute, MaxBackoff: 6 * time.Hour}

type deliveryDeps struct {
	jobs      *sharedmock.MockJobRepository
	directory *sharedmock.MockFirmDirectory
	tasks     *sharedmock.MockTaskSource
	mailer    *sharedmock.MockMailer
	clock     *clock.MockClock
	uc        commands.DeliveryCommands

	firm      *firm.Firm
	recipient *recipient.Recipient
	now       time.Time
}

func newDeliveryDeps(t *testing.T) *deliveryDeps {
	ctrl := gomock.NewController(t)
	// 13:00:05 UTC is 18:30:05 in Kolkata.
	now := time.Date(2025, 1, 15, 13, 0, 5, 0, time.UTC)
	acme := builder.NewFirmBuilder().BuildDomain()
	d := &deliveryDeps{
		jobs:      sharedmock.NewMockJobRepository(ctrl),
		directory: sharedmock.NewMockFirmDirectory(ctrl),
		tasks:     sharedmock.NewMockTaskSource(ctrl),
		mailer:    sharedmock.NewMockMailer(ctrl),
		clock:     clock.NewMockClock(now),
		firm:      acme,
		recipient: builder.NewRecipientBuilder().InFirm(acme.ID()).BuildDomain(),
		now:       now,
	}
	d.uc = commands.NewDeliveryCommands(
		d.jobs, d.directory, d.tasks,
		digest.NewRenderer(digest.Options{}),
		d.mailer, d.clock,
		commands.DeliverySettings{
			Retry:           testRetry,
			BatchSize:       10,
			Concurrency:     2,
			ClaimLease:      15 * time.Minute,
			DefaultLocation: time.UTC,
		},
		slog.New(slog.DiscardHandler),
	)
	return d
}

// expectBatch sets up the stale requeue and due listing that start every batch.
func (d *deliveryDeps) expectBatch(due ...*job.Job) {
	d.jobs.EXPECT().RequeueStale(gomock.Any(), d.now.Add(-15*time.Minute), d.now, testRetry.MaxAttempts).Return(int64(0), nil)
	d.jobs.EXPECT().ListDue(gomock.Any(), d.now, testRetry.MaxAttempts, 10).Return(due, nil)
}

// jobFor returns the listed (pending) and claimed (processing) forms of one job.
func (d *deliveryDeps) jobFor(r *recipient.Recipient, priorAttempts int) (listed, claimed *job.Job) {
	b := builder.NewJobBuilder().For(r.ID(), d.firm.ID())
	if priorAttempts > 0 {
		next := d.now.Add(-time.Minute)
		b.With(func(p *job.RestoreParams) {
			p.Status, p.AttemptCount, p.NextAttemptAt = job.StatusFailed, priorAttempts, &next
		})
	}
	listed = b.BuildDomain()
	claimed = b.Processing(priorAttempts).BuildDomain()
	return listed, claimed
}

func (d *deliveryDeps) expectLookups() {
	d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(d.recipient, nil)
	d.directory.EXPECT().FirmByID(gomock.Any(), d.firm.ID()).Return(d.firm, nil)
}

func TestDeliveryCommands_RunWorkerBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sends the individual digest and records the delivery id", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, claimed := d.jobFor(d.recipient, 0)
		tasks := []task.Task{
			builder.NewTaskBuilder().Titled("GST return").Due(d.now.Add(-24 * time.Hour)).
				AssignedTo(d.recipient.ID(), d.recipient.Name()).Build(),
		}

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
		d.expectLookups()
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).Return(tasks, nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.Message) (string, error) {
			assert.Equal(t, "asha@acme.example", msg.To)
			assert.Equal(t, "Asha", msg.ToName)
			assert.Equal(t, "Your task digest for Wed, Jan 15, 2025", msg.Subject)
			assert.Contains(t, msg.HTML, "<td>GST return</td>")
			assert.NotContains(t, msg.HTML, "Full firm overview")
			return "msg-1", nil
		})
		d.jobs.EXPECT().MarkSent(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), "msg-1", d.now).Return(nil)

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{Listed: 1, Claimed: 1, Sent: 1}, res)
	})

	t.Run("success: manager receives the aggregate digest", func(t *testing.T) {
		d := newDeliveryDeps(t)
		d.recipient = builder.NewRecipientBuilder().InFirm(d.firm.ID()).AsManager().
			With(func(r *builder.RecipientBuilder) { r.Name, r.Email = "Priya", "priya@acme.example" }).BuildDomain()
		listed, claimed := d.jobFor(d.recipient, 0)
		firmTasks := []task.Task{
			builder.NewTaskBuilder().Titled("TDS filing").Status(task.StatusReadyForReview).Build(),
		}

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
		d.expectLookups()
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).Return(nil, nil)
		d.tasks.EXPECT().OpenTasksForFirm(gomock.Any(), d.firm.ID()).Return(firmTasks, nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.Message) (string, error) {
			assert.Equal(t, "priya@acme.example", msg.To)
			assert.Contains(t, msg.HTML, "Your tasks")
			assert.Contains(t, msg.HTML, "Full firm overview")
			assert.Contains(t, msg.HTML, "<td>TDS filing</td>")
			return "msg-2", nil
		})
		d.jobs.EXPECT().MarkSent(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), "msg-2", d.now).Return(nil)

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Sent)
	})

	t.Run("success: job claimed by another worker is skipped", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, _ := d.jobFor(d.recipient, 0)

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).
			Return(nil, errs.Wrapf(errs.ErrJobNotClaimed, "job %s", listed.ID()))

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{Listed: 1, Skipped: 1}, res)
	})

	t.Run("success: transient failure schedules a retry with backoff", func(t *testing.T) {
		testCases := []struct {
			name          string
			priorAttempts int
			wantNext      *time.Time
		}{
			{name: "first failure", priorAttempts: 0, wantNext: ptr.To(time.Date(2025, 1, 15, 13, 10, 5, 0, time.UTC))},
			{name: "second failure doubles the delay", priorAttempts: 1, wantNext: ptr.To(time.Date(2025, 1, 15, 13, 20, 5, 0, time.UTC))},
			{name: "last attempt is terminal", priorAttempts: 2, wantNext: nil},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d := newDeliveryDeps(t)
				listed, claimed := d.jobFor(d.recipient, tc.priorAttempts)

				d.expectBatch(listed)
				d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
				d.expectLookups()
				d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).Return(nil, nil)
				d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("421 service not available"))
				d.jobs.EXPECT().MarkFailed(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), gomock.Any(), d.now, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, lastError string, _ time.Time, next *time.Time) error {
						assert.Contains(t, lastError, "email provider rejected digest")
						assert.Contains(t, lastError, "421 service not available")
						assert.Equal(t, tc.wantNext, next)
						return nil
					})

				res, err := d.uc.RunWorkerBatch(ctx)

				require.NoError(t, err)
				assert.Equal(t, &commands.BatchResult{Listed: 1, Claimed: 1, Failed: 1}, res)
			})
		}
	})

	t.Run("success: permanent failures are not retried", func(t *testing.T) {
		inactive := func(d *deliveryDeps) {
			d.recipient = builder.NewRecipientBuilder().InFirm(d.firm.ID()).
				With(func(r *builder.RecipientBuilder) { r.IsActive = false }).BuildDomain()
		}

		testCases := []struct {
			name    string
			mutate  func(*deliveryDeps)
			setup   func(*deliveryDeps)
			inError string
		}{
			{
				name: "recipient deleted",
				setup: func(d *deliveryDeps) {
					d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).
						Return(nil, errs.Mark(errors.New("no rows"), errs.ErrRecipientNotFound))
				},
				inError: "failed to load recipient",
			},
			{
				name:   "recipient deactivated",
				mutate: inactive,
				setup: func(d *deliveryDeps) {
					d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(d.recipient, nil)
				},
				inError: "recipient inactive",
			},
			{
				name: "recipient row invalid",
				setup: func(d *deliveryDeps) {
					d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(nil, recipient.ErrInvalidEmail)
				},
				inError: "invalid email format",
			},
			{
				name: "firm deleted",
				setup: func(d *deliveryDeps) {
					d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(d.recipient, nil)
					d.directory.EXPECT().FirmByID(gomock.Any(), d.firm.ID()).
						Return(nil, errs.Mark(errors.New("no rows"), errs.ErrFirmNotFound))
				},
				inError: "failed to load firm",
			},
			{
				name: "firm deactivated",
				setup: func(d *deliveryDeps) {
					closed := builder.NewFirmBuilder().With(func(b *builder.FirmBuilder) {
						b.ID, b.IsActive = d.firm.ID(), false
					}).BuildDomain()
					d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(d.recipient, nil)
					d.directory.EXPECT().FirmByID(gomock.Any(), d.firm.ID()).Return(closed, nil)
				},
				inError: "firm inactive",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d := newDeliveryDeps(t)
				if tc.mutate != nil {
					tc.mutate(d)
				}
				listed, claimed := d.jobFor(d.recipient, 0)

				d.expectBatch(listed)
				d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
				tc.setup(d)
				d.jobs.EXPECT().MarkFailed(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), gomock.Any(), d.now, gomock.Nil()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, lastError string, _ time.Time, _ *time.Time) error {
						assert.Contains(t, lastError, tc.inError)
						return nil
					})

				res, err := d.uc.RunWorkerBatch(ctx)

				require.NoError(t, err)
				assert.Equal(t, 1, res.Failed)
			})
		}
	})

	t.Run("success: task source failure is retried", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, claimed := d.jobFor(d.recipient, 0)

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
		d.expectLookups()
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).Return(nil, errors.New("statement timeout"))
		d.jobs.EXPECT().MarkFailed(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), gomock.Any(), d.now, gomock.Not(gomock.Nil())).Return(nil)

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("success: one job failing does not stop the batch", func(t *testing.T) {
		d := newDeliveryDeps(t)
		ravi := builder.NewRecipientBuilder().InFirm(d.firm.ID()).
			With(func(r *builder.RecipientBuilder) { r.Name, r.Email = "Ravi", "ravi@acme.example" }).BuildDomain()
		listedA, claimedA := d.jobFor(d.recipient, 0)
		listedB, claimedB := d.jobFor(ravi, 0)

		d.expectBatch(listedA, listedB)
		d.jobs.EXPECT().Claim(gomock.Any(), listedA.ID(), d.now, testRetry.MaxAttempts).Return(claimedA, nil)
		d.jobs.EXPECT().Claim(gomock.Any(), listedB.ID(), d.now, testRetry.MaxAttempts).Return(claimedB, nil)
		d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).Return(nil, errors.New("connection reset"))
		d.directory.EXPECT().RecipientByID(gomock.Any(), ravi.ID()).Return(ravi, nil)
		d.directory.EXPECT().FirmByID(gomock.Any(), d.firm.ID()).Return(d.firm, nil)
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), ravi.ID()).Return(nil, nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-3", nil)
		d.jobs.EXPECT().MarkFailed(gomock.Any(), listedA.ID(), *claimedA.ClaimedAt(), gomock.Any(), d.now, gomock.Not(gomock.Nil())).Return(nil)
		d.jobs.EXPECT().MarkSent(gomock.Any(), listedB.ID(), *claimedB.ClaimedAt(), "msg-3", d.now).Return(nil)

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{Listed: 2, Claimed: 2, Sent: 1, Failed: 1}, res)
	})

	t.Run("success: sent digest counts even when recording fails", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, claimed := d.jobFor(d.recipient, 0)

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).Return(claimed, nil)
		d.expectLookups()
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).Return(nil, nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-4", nil)
		d.jobs.EXPECT().MarkSent(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), "msg-4", d.now).Return(errors.New("connection reset"))

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Sent)
	})

	t.Run("success: shutdown after the claim lets the job finish", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, claimed := d.jobFor(d.recipient, 0)
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		d.expectBatch(listed)
		d.jobs.EXPECT().Claim(gomock.Any(), listed.ID(), d.now, testRetry.MaxAttempts).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, _ int) (*job.Job, error) {
				cancel()
				return claimed, nil
			})
		d.directory.EXPECT().RecipientByID(gomock.Any(), d.recipient.ID()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*recipient.Recipient, error) {
				require.NoError(t, ctx.Err())
				return d.recipient, nil
			})
		d.directory.EXPECT().FirmByID(gomock.Any(), d.firm.ID()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID) (*firm.Firm, error) {
				require.NoError(t, ctx.Err())
				return d.firm, nil
			})
		d.tasks.EXPECT().OpenTasksForAssignee(gomock.Any(), d.recipient.ID()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID) ([]task.Task, error) {
				require.NoError(t, ctx.Err())
				return nil, nil
			})
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-5", nil)
		d.jobs.EXPECT().MarkSent(gomock.Any(), listed.ID(), *claimed.ClaimedAt(), "msg-5", d.now).Return(nil)

		res, err := d.uc.RunWorkerBatch(runCtx)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{Listed: 1, Claimed: 1, Sent: 1}, res)
	})

	t.Run("success: requeue failure does not block the batch", func(t *testing.T) {
		d := newDeliveryDeps(t)
		d.jobs.EXPECT().RequeueStale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("lock timeout"))
		d.jobs.EXPECT().ListDue(gomock.Any(), d.now, testRetry.MaxAttempts, 10).Return(nil, nil)

		res, err := d.uc.RunWorkerBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{}, res)
	})

	t.Run("success: cancelled context starts no new jobs", func(t *testing.T) {
		d := newDeliveryDeps(t)
		listed, _ := d.jobFor(d.recipient, 0)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		d.jobs.EXPECT().RequeueStale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil)
		d.jobs.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*job.Job{listed}, nil)

		res, err := d.uc.RunWorkerBatch(cancelled)

		require.NoError(t, err)
		assert.Equal(t, &commands.BatchResult{Requeued: 2, Listed: 1}, res)
	})

	t.Run("error: listing due jobs fails", func(t *testing.T) {
		d := newDeliveryDeps(t)
		d.jobs.EXPECT().RequeueStale(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		d.jobs.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database unavailable"))

		_, err := d.uc.RunWorkerBatch(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list due jobs")
	})
}
