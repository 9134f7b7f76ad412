package usecase

import (
	"fmt"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/domain/schedule"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/commands"
)

func RetryPolicy(cfg config.WorkerConfig) job.RetryPolicy {
	return job.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		Backoff:     cfg.RetryBackoff,
		MaxBackoff:  cfg.RetryBackoffMax,
	}
}

func SchedulingSettings(cfg config.Config) (commands.SchedulingSettings, error) {
	window, err := schedule.NewWindow(cfg.Scheduler.WindowStart, cfg.Scheduler.WindowEnd)
	if err != nil {
		return commands.SchedulingSettings{}, fmt.Errorf("invalid scheduling window: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Scheduler.DefaultTimeZone)
	if err != nil {
		return commands.SchedulingSettings{}, fmt.Errorf("invalid default time zone: %w", err)
	}
	return commands.SchedulingSettings{
		Window:          window,
		DefaultLocation: loc,
		Concurrency:     cfg.Scheduler.Concurrency,
	}, nil
}

func DeliverySettings(cfg config.Config) (commands.DeliverySettings, error) {
	loc, err := time.LoadLocation(cfg.Scheduler.DefaultTimeZone)
	if err != nil {
		return commands.DeliverySettings{}, fmt.Errorf("invalid default time zone: %w", err)
	}
	return commands.DeliverySettings{
		Retry:           RetryPolicy(cfg.Worker),
		BatchSize:       cfg.Worker.BatchSize,
		Concurrency:     cfg.Worker.Concurrency,
		ClaimLease:      cfg.Worker.ClaimLease,
		DefaultLocation: loc,
	}, nil
}
