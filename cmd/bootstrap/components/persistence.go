package components

import (
	"context"
	"log/slog"

	"firm-digest/internal/infra/mailer"
	"firm-digest/internal/infra/storage"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/queries"
	"firm-digest/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
		NewMailer,
	),
)

type StorageOut struct {
	fx.Out

	Jobs      shared.JobRepository
	Directory shared.FirmDirectory
	Tasks     shared.TaskSource
	JobReads  queries.JobReadStore
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (StorageOut, error) {
	s, cleanup, err := storage.Open(context.Background(), cfg.DB, logger)
	if err != nil {
		return StorageOut{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("storage opened", "driver", cfg.DB.Driver)
	return StorageOut{
		Jobs:      s.Jobs,
		Directory: s.Directory,
		Tasks:     s.Tasks,
		JobReads:  s.JobReads,
	}, nil
}

func NewMailer(cfg config.Config, logger *slog.Logger) shared.Mailer {
	return mailer.New(cfg.Mail, logger)
}
