package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock firm-digest/internal/usecase/commands SchedulingCommands,DeliveryCommands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/job"
	"firm-digest/internal/domain/schedule"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type PassResult struct {
	FirmsScanned  int `json:"firms_scanned"`
	FirmsInWindow int `json:"firms_in_window"`
	JobsCreated   int `json:"jobs_created"`
	JobsExisting  int `json:"jobs_existing"`
	Failures      int `json:"failures"`
}

type SchedulingSettings struct {
	Window          schedule.Window
	DefaultLocation *time.Location
	Concurrency     int
}

type SchedulingCommands interface {
	// RunSchedulingPass enqueues today's digest jobs for every active firm
	// whose local time falls inside the window. Safe to call repeatedly.
	RunSchedulingPass(ctx context.Context, now time.Time) (*PassResult, error)
}

type schedulingUseCaseImpl struct {
	directory shared.FirmDirectory
	jobs      shared.JobRepository
	settings  SchedulingSettings
	logger    *slog.Logger
}

func NewSchedulingCommands(directory shared.FirmDirectory, jobs shared.JobRepository, settings SchedulingSettings, logger *slog.Logger) SchedulingCommands {
	if settings.DefaultLocation == nil {
		settings.DefaultLocation = time.UTC
	}
	return &schedulingUseCaseImpl{
		directory: directory,
		jobs:      jobs,
		settings:  settings,
		logger:    logger,
	}
}

type firmOutcome struct {
	inWindow bool
	created  int
	existing int
	failures int
}

func (uc *schedulingUseCaseImpl) RunSchedulingPass(ctx context.Context, now time.Time) (*PassResult, error) {
	firms, err := uc.directory.ActiveFirms(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active firms")
	}

	var (
		mu     sync.Mutex
		result = &PassResult{FirmsScanned: len(firms)}
	)

	// Plain Group: a failing firm must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(max(1, uc.settings.Concurrency))
	for _, f := range firms {
		g.Go(func() error {
			out := uc.scheduleFirm(ctx, f, now)

			mu.Lock()
			defer mu.Unlock()
			if out.inWindow {
				result.FirmsInWindow++
			}
			result.JobsCreated += out.created
			result.JobsExisting += out.existing
			result.Failures += out.failures
			return nil
		})
	}
	_ = g.Wait()

	uc.logger.Info("scheduling pass finished",
		"firms_scanned", result.FirmsScanned,
		"firms_in_window", result.FirmsInWindow,
		"jobs_created", result.JobsCreated,
		"jobs_existing", result.JobsExisting,
		"failures", result.Failures,
	)
	return result, nil
}

func (uc *schedulingUseCaseImpl) scheduleFirm(ctx context.Context, f *firm.Firm, now time.Time) (out firmOutcome) {
	logger := uc.logger.With("firm_id", f.ID().String())
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while scheduling firm", "panic", r)
			out.failures++
		}
	}()

	loc, ok := f.Location(uc.settings.DefaultLocation)
	if !ok {
		logger.Warn("firm time zone missing or invalid, using fallback",
			"time_zone", f.TimeZone(),
			"fallback", uc.settings.DefaultLocation.String(),
		)
	}

	local := now.In(loc)
	if !uc.settings.Window.Contains(local) {
		logger.Debug("firm outside scheduling window", "local_time", local.Format(time.Kitchen), "window", uc.settings.Window.String())
		return out
	}
	out.inWindow = true
	date := schedule.LocalDate(now, loc)

	recipients, err := uc.directory.ActiveRecipients(ctx, f.ID())
	if err != nil {
		logger.Error("failed to list active recipients", "error", err)
		out.failures++
		return out
	}

	for _, r := range recipients {
		j := job.NewDayEndReminder(r.ID(), f.ID(), now, date)
		created, err := uc.jobs.Enqueue(ctx, j)
		if err != nil {
			logger.Error("failed to enqueue digest job",
				"recipient_id", r.ID().String(),
				"scheduled_date", date.String(),
				"error", err,
			)
			out.failures++
			continue
		}
		if created {
			out.created++
		} else {
			out.existing++
		}
	}

	logger.Info("firm digest jobs enqueued",
		"scheduled_date", date.String(),
		"recipients", len(recipients),
		"created", out.created,
		"existing", out.existing,
	)
	return out
}
