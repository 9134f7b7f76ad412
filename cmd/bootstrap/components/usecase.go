package components

import (
	"firm-digest/internal/domain/digest"
	"firm-digest/internal/domain/job"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase"
	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) job.RetryPolicy {
		return usecase.RetryPolicy(cfg.Worker)
	},
	func(cfg config.Config) *digest.Renderer {
		return digest.NewRenderer(digest.Options{AppBaseURL: cfg.Digest.AppBaseURL})
	},
	usecase.SchedulingSettings,
	usecase.DeliverySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSchedulingCommands,
		commands.NewDeliveryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewJobQueries,
	),
)
