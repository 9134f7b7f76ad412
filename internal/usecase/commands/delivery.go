package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"firm-digest/internal/domain/digest"
	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/job"
	"firm-digest/internal/domain/recipient"
	"firm-digest/internal/domain/task"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type BatchResult struct {
	Requeued int64 `json:"requeued"`
	Listed   int   `json:"listed"`
	Claimed  int   `json:"claimed"`
	Skipped  int   `json:"skipped"`
	Sent     int   `json:"sent"`
	Failed   int   `json:"failed"`
}

type DeliverySettings struct {
	Retry           job.RetryPolicy
	BatchSize       int
	Concurrency     int
	ClaimLease      time.Duration
	DefaultLocation *time.Location
}

type DeliveryCommands interface {
	// RunWorkerBatch claims and delivers one batch of due jobs. Per-job
	// failures are recorded on the job; only a failure to list the batch is
	// returned.
	RunWorkerBatch(ctx context.Context) (*BatchResult, error)
}

type deliveryUseCaseImpl struct {
	jobs      shared.JobRepository
	directory shared.FirmDirectory
	tasks     shared.TaskSource
	renderer  *digest.Renderer
	mailer    shared.Mailer
	clock     clock.Clock
	settings  DeliverySettings
	logger    *slog.Logger
}

func NewDeliveryCommands(
	jobs shared.JobRepository,
	directory shared.FirmDirectory,
	tasks shared.TaskSource,
	renderer *digest.Renderer,
	mailer shared.Mailer,
	clk clock.Clock,
	settings DeliverySettings,
	logger *slog.Logger,
) DeliveryCommands {
	if settings.DefaultLocation == nil {
		settings.DefaultLocation = time.UTC
	}
	return &deliveryUseCaseImpl{
		jobs:      jobs,
		directory: directory,
		tasks:     tasks,
		renderer:  renderer,
		mailer:    mailer,
		clock:     clk,
		settings:  settings,
		logger:    logger,
	}
}

type deliveryOutcome int

const (
	outcomeSkipped deliveryOutcome = iota
	outcomeSent
	outcomeFailed
)

func (uc *deliveryUseCaseImpl) RunWorkerBatch(ctx context.Context) (*BatchResult, error) {
	now := uc.clock.Now()
	result := &BatchResult{}

	requeued, err := uc.jobs.RequeueStale(ctx, now.Add(-uc.settings.ClaimLease), now, uc.settings.Retry.MaxAttempts)
	if err != nil {
		uc.logger.Warn("failed to requeue stale claims", "error", err)
	} else if requeued > 0 {
		uc.logger.Warn("requeued jobs abandoned mid-delivery", "count", requeued)
	}
	result.Requeued = requeued

	due, err := uc.jobs.ListDue(ctx, now, uc.settings.Retry.MaxAttempts, uc.settings.BatchSize)
	if err != nil {
		return result, errs.Wrap(err, "failed to list due jobs")
	}
	result.Listed = len(due)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(max(1, uc.settings.Concurrency))
	for _, j := range due {
		// Stop starting new jobs once shutdown begins; started ones finish.
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out := uc.deliver(ctx, j.ID())

			mu.Lock()
			defer mu.Unlock()
			switch out {
			case outcomeSent:
				result.Claimed++
				result.Sent++
			case outcomeFailed:
				result.Claimed++
				result.Failed++
			default:
				result.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	if result.Listed > 0 {
		uc.logger.Info("worker batch finished",
			"listed", result.Listed,
			"claimed", result.Claimed,
			"skipped", result.Skipped,
			"sent", result.Sent,
			"failed", result.Failed,
		)
	}
	return result, nil
}

func (uc *deliveryUseCaseImpl) deliver(ctx context.Context, id uuid.UUID) deliveryOutcome {
	j, err := uc.jobs.Claim(ctx, id, uc.clock.Now(), uc.settings.Retry.MaxAttempts)
	if err != nil {
		if errs.Is(err, errs.ErrJobNotClaimed) {
			uc.logger.Debug("job claimed elsewhere, skipping", "job_id", id.String())
		} else {
			uc.logger.Error("failed to claim job", "job_id", id.String(), "error", err)
		}
		return outcomeSkipped
	}

	attempt := j.AttemptCount() + 1
	logger := uc.logger.With(
		"job_id", j.ID().String(),
		"recipient_id", j.RecipientID().String(),
		"firm_id", j.FirmID().String(),
		"attempt", attempt,
	)

	// The row is ours now. Shutdown must not cut the job short and burn an
	// attempt, so everything after the claim ignores cancellation.
	jobCtx := context.WithoutCancel(ctx)
	claimedAt := *j.ClaimedAt()

	deliveryID, procErr := uc.process(jobCtx, j)
	finishedAt := uc.clock.Now()

	if procErr != nil {
		permanent := errs.IsPermanent(procErr)
		var next *time.Time
		if !permanent {
			next = uc.settings.Retry.NextAttemptAt(attempt, finishedAt)
		}
		if err := uc.jobs.MarkFailed(jobCtx, j.ID(), claimedAt, errs.Diagnostic(procErr, job.MaxErrorLength), finishedAt, next); err != nil {
			logger.Error("failed to record delivery failure", "error", err, "cause", procErr)
			return outcomeFailed
		}
		if next == nil {
			logger.Error("digest delivery failed terminally", "error", procErr, "permanent", permanent)
		} else {
			logger.Warn("digest delivery failed, will retry", "error", procErr, "retry_at", *next)
		}
		return outcomeFailed
	}

	if err := uc.jobs.MarkSent(jobCtx, j.ID(), claimedAt, deliveryID, finishedAt); err != nil {
		logger.Error("digest sent but outcome not recorded", "delivery_id", deliveryID, "error", err)
		return outcomeSent
	}
	logger.Info("digest sent", "delivery_id", deliveryID)
	return outcomeSent
}

func (uc *deliveryUseCaseImpl) process(ctx context.Context, j *job.Job) (deliveryID string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("panic while building digest: %v", r)
		}
	}()

	rcpt, err := uc.directory.RecipientByID(ctx, j.RecipientID())
	if err != nil {
		return "", classifyLookupErr(err, "failed to load recipient")
	}
	if !rcpt.IsActive() {
		return "", errs.Mark(errs.Wrapf(errs.ErrRecipientInactive, "recipient %s", rcpt.ID()), errs.ErrPermanent)
	}

	f, err := uc.directory.FirmByID(ctx, j.FirmID())
	if err != nil {
		return "", classifyLookupErr(err, "failed to load firm")
	}
	if !f.IsActive() {
		return "", errs.Mark(errs.Wrapf(errs.ErrFirmInactive, "firm %s", f.ID()), errs.ErrPermanent)
	}
	loc, _ := f.Location(uc.settings.DefaultLocation)
	now := uc.clock.Now().In(loc)

	doc, err := uc.compose(ctx, rcpt, f, now)
	if err != nil {
		return "", err
	}

	msg := shared.Message{
		To:      rcpt.Email().Value(),
		ToName:  rcpt.Name(),
		Subject: doc.Subject,
		HTML:    doc.HTML,
	}
	// The provider's own timeout bounds the send.
	deliveryID, err = uc.mailer.Send(ctx, msg)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "email provider rejected digest"), errs.ErrDeliveryFailed)
	}
	return deliveryID, nil
}

func (uc *deliveryUseCaseImpl) compose(ctx context.Context, r *recipient.Recipient, f *firm.Firm, now time.Time) (digest.Document, error) {
	own, err := uc.tasks.OpenTasksForAssignee(ctx, r.ID())
	if err != nil {
		return digest.Document{}, errs.Wrap(err, "failed to load recipient tasks")
	}
	personal := task.Summarize(now, own)

	if !r.Role().WantsAggregate() {
		doc, err := uc.renderer.RenderIndividual(r.Name(), now, personal)
		return doc, errs.Wrap(err, "failed to render individual digest")
	}

	all, err := uc.tasks.OpenTasksForFirm(ctx, f.ID())
	if err != nil {
		return digest.Document{}, errs.Wrap(err, "failed to load firm tasks")
	}
	doc, err := uc.renderer.RenderAggregate(r.Name(), now, personal, task.Summarize(now, all))
	return doc, errs.Wrap(err, "failed to render aggregate digest")
}

// Missing rows and rows the domain rejects will not heal on retry.
func classifyLookupErr(err error, msg string) error {
	wrapped := errs.Wrap(err, msg)
	switch {
	case errs.Is(err, errs.ErrRecipientNotFound),
		errs.Is(err, errs.ErrFirmNotFound),
		errs.Is(err, recipient.ErrInvalidEmail),
		errs.Is(err, recipient.ErrInvalidRole),
		errs.Is(err, recipient.ErrEmptyName):
		return errs.Mark(wrapped, errs.ErrPermanent)
	default:
		return wrapped
	}
}
