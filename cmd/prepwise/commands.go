package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/prepwise-api/internal/config"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/platform/postgres"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/spf13/cobra"
)

// errNoDatabase is returned by commands that need a database when none is configured.
var errNoDatabase = errors.New("database.url is not configured (set PREPWISE_DATABASE_URL)")

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "prepwise",
		Short:         "Prepwise API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./prepwise.yaml)")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newPlansCmd(&configPath),
	)
	return root
}

// loadRuntime loads configuration and sets up logging.
func loadRuntime(configPath string) (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return cfg, log, closer, nil
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closer, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := newApplication(ctx, cfg, log)
			defer app.cleanup()

			return app.Run(ctx)
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: postgres.MigrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closer, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			return withDatabase(cmd.Context(), cfg, func(ctx context.Context, app *application) error {
				return postgres.Migrate(ctx, app.db, args[0], log)
			}, log)
		},
	}
}

func newPlansCmd(configPath *string) *cobra.Command {
	plans := &cobra.Command{
		Use:   "plans",
		Short: "Manage the study-plan catalog",
	}

	plans.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Upsert the default plans into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closer, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			return withDatabase(cmd.Context(), cfg, func(ctx context.Context, app *application) error {
				n, err := app.planService.SeedDefaults(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d plans\n", n)
				return err
			}, log)
		},
	})

	return plans
}

// withDatabase builds the application around a database connection and runs
// fn with it. Unlike serve, it fails when the database is unreachable.
func withDatabase(
	ctx context.Context,
	cfg *config.Config,
	fn func(ctx context.Context, app *application) error,
	log *slog.Logger,
) error {
	if !cfg.DatabaseEnabled() {
		return errNoDatabase
	}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("database is unavailable: %s", redact.Error(err))
	}

	app := buildApplication(ctx, cfg, log, db)
	defer app.cleanup()

	return fn(ctx, app)
}
