package components

import (
	"context"
	"log/slog"

	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewScheduler,
		NewPoller,
	),
	fx.Invoke(startBackgroundLoops),
)

func NewScheduler(cmds commands.SchedulingCommands, cfg config.Config, clk clock.Clock, logger *slog.Logger) *worker.Scheduler {
	return worker.NewScheduler(cmds, cfg.Scheduler.Cron, clk, logger)
}

func NewPoller(cmds commands.DeliveryCommands, cfg config.Config, logger *slog.Logger) *worker.Poller {
	return worker.NewPoller(cmds, cfg.Worker.PollInterval, cfg.Worker.BatchSize, logger)
}

func startBackgroundLoops(lc fx.Lifecycle, cfg config.Config, scheduler *worker.Scheduler, poller *worker.Poller) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Scheduler.Enabled {
				scheduler.Start()
			}
			if cfg.Worker.Enabled {
				poller.Start()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Worker.ShutdownTimeout)
			defer cancel()
			if err := scheduler.Stop(ctx); err != nil {
				return err
			}
			return poller.Stop(ctx)
		},
	})
}
