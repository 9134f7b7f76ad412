package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"firm-digest/internal/domain/digest"
	"firm-digest/internal/handler/middleware"
	"firm-digest/internal/infra/mailer"
	"firm-digest/internal/infra/storage"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/config"
	"firm-digest/internal/pkg/jwt"
	"firm-digest/internal/usecase"
	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/usecase/queries"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/google/uuid"
	"github.com/urfave/cli"
)

var (
	passAt       string
	firmIDFlag   string
	dateFlag     string
	failedLimit  int
	migrationDir string
	atlasBin     string
	subject      string

	runPassFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "at",
			Usage:       "evaluate the window at this RFC 3339 instant instead of now",
			Destination: &passAt,
		},
	}
	firmDateFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "firm, f",
			Usage:       "firm id",
			Destination: &firmIDFlag,
		},
		cli.StringFlag{
			Name:        "date, d",
			Usage:       "local date (YYYY-MM-DD)",
			Destination: &dateFlag,
		},
	}
	failedFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "limit, n",
			Usage:       "maximum jobs to list",
			Value:       50,
			Destination: &failedLimit,
		},
	}
	migrateFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "dir",
			Usage:       "migration directory",
			Value:       "migrations",
			Destination: &migrationDir,
		},
		cli.StringFlag{
			Name:        "atlas",
			Usage:       "path to the atlas binary",
			Value:       "atlas",
			Destination: &atlasBin,
		},
	}
	adminTokenFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "subject, s",
			Usage:       "operator name recorded in the token",
			Value:       "digestctl",
			Destination: &subject,
		},
	}
)

// env is the wiring shared by every command that touches storage.
type env struct {
	cfg        config.Config
	logger     *slog.Logger
	scheduling commands.SchedulingCommands
	delivery   commands.DeliveryCommands
	queries    queries.JobQueries
	close      func()
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := middleware.NewLogger(cfg.Log)

	store, cleanup, err := storage.Open(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	schedSettings, err := usecase.SchedulingSettings(cfg)
	if err != nil {
		cleanup()
		return nil, err
	}
	delivSettings, err := usecase.DeliverySettings(cfg)
	if err != nil {
		cleanup()
		return nil, err
	}

	renderer := digest.NewRenderer(digest.Options{AppBaseURL: cfg.Digest.AppBaseURL})
	return &env{
		cfg:        cfg,
		logger:     logger,
		scheduling: commands.NewSchedulingCommands(store.Directory, store.Jobs, schedSettings, logger),
		delivery: commands.NewDeliveryCommands(
			store.Jobs, store.Directory, store.Tasks, renderer,
			mailer.New(cfg.Mail, logger), clock.NewRealClock(), delivSettings, logger,
		),
		queries: queries.NewJobQueries(store.JobReads, usecase.RetryPolicy(cfg.Worker)),
		close:   cleanup,
	}, nil
}

func withEnv(fn func(ctx context.Context, e *env) (any, error)) cli.ActionFunc {
	return func(_ *cli.Context) error {
		ctx := context.Background()
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		out, err := fn(ctx, e)
		if err != nil {
			return err
		}
		return printJSON(out)
	}
}

var runPass = withEnv(func(ctx context.Context, e *env) (any, error) {
	at := time.Now()
	if passAt != "" {
		t, err := time.Parse(time.RFC3339, passAt)
		if err != nil {
			return nil, fmt.Errorf("invalid --at: %w", err)
		}
		at = t
	}
	return e.scheduling.RunSchedulingPass(ctx, at)
})

var runBatch = withEnv(func(ctx context.Context, e *env) (any, error) {
	return e.delivery.RunWorkerBatch(ctx)
})

var listJobs = withEnv(func(ctx context.Context, e *env) (any, error) {
	firmID, err := parseFirmID()
	if err != nil {
		return nil, err
	}
	return e.queries.ListByFirmAndDate(ctx, firmID, dateFlag)
})

var firmStatus = withEnv(func(ctx context.Context, e *env) (any, error) {
	firmID, err := parseFirmID()
	if err != nil {
		return nil, err
	}
	return e.queries.StatusCounts(ctx, firmID, dateFlag)
})

var listFailed = withEnv(func(ctx context.Context, e *env) (any, error) {
	return e.queries.ListFailed(ctx, failedLimit)
})

func migrate(_ *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DB.Driver != config.DriverPostgres {
		fmt.Println("sqlite schema is applied on open; nothing to migrate")
		return nil
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(migrationDir)))
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to start atlas: %w", err)
	}
	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	fmt.Printf("applied %d migrations (current %q, target %q)\n", len(res.Applied), res.Current, res.Target)
	return nil
}

func adminToken(_ *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	token, err := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenDuration).GenerateToken(subject)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	fmt.Println(token)
	return nil
}

func parseFirmID() (uuid.UUID, error) {
	id, err := uuid.Parse(firmIDFlag)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --firm %q: %w", firmIDFlag, err)
	}
	return id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
