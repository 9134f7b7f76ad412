// Package storage opens the configured backend and exposes it through the
// use-case ports.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"firm-digest/internal/infra/db"
	"firm-digest/internal/infra/readstore"
	"firm-digest/internal/infra/repository"
	"firm-digest/internal/infra/sqlitestore"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/usecase/queries"
	"firm-digest/internal/usecase/shared"
)

type Storage struct {
	Jobs      shared.JobRepository
	Directory shared.FirmDirectory
	Tasks     shared.TaskSource
	JobReads  queries.JobReadStore
}

// Open connects to the backend named by cfg.Driver. The returned cleanup
// closes it.
func Open(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Storage, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, cleanup, err := db.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		return &Storage{
			Jobs:      repository.NewJobRepository(pool),
			Directory: readstore.NewDirectoryReadStore(pool, logger),
			Tasks:     readstore.NewTaskReadStore(pool, logger),
			JobReads:  readstore.NewJobReadStore(pool),
		}, cleanup, nil

	case config.DriverSQLite:
		sqlDB, cleanup, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return &Storage{
			Jobs:      sqlitestore.NewJobRepository(sqlDB),
			Directory: sqlitestore.NewDirectoryReadStore(sqlDB, logger),
			Tasks:     sqlitestore.NewTaskReadStore(sqlDB, logger),
			JobReads:  sqlitestore.NewJobReadStore(sqlDB),
		}, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}
