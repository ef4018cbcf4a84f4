package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/phrazzld/prepwise-api/internal/api"
	"github.com/phrazzld/prepwise-api/internal/config"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/platform/gemini"
	"github.com/phrazzld/prepwise-api/internal/platform/postgres"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when no database is configured or it was unreachable at startup.
	db *sql.DB

	generator   generation.Generator
	planService service.PlanService
}

// newApplication wires the application for serving. A configured but
// unreachable database is logged and skipped; plan listings then come from
// the default catalog.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) *application {
	var db *sql.DB
	if cfg.DatabaseEnabled() {
		var err error
		db, err = postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("database unavailable, serving default plans",
				slog.String("error", redact.Error(err)))
			db = nil
		}
	} else {
		logger.Info("no database configured, serving default plans")
	}

	return buildApplication(ctx, cfg, logger, db)
}

// buildApplication creates the services around an optional database.
func buildApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	model := gemini.New(ctx, logger, cfg.LLM)
	app.generator = generation.NewService(model,
		generation.WithLogger(logger),
		generation.WithRetryPolicy(cfg.LLM.MaxRetries, cfg.LLM.RetryInitialDelay),
		generation.WithChatMaxOutputTokens(cfg.LLM.ChatMaxOutputTokens),
	)

	var planStore store.PlanStore
	if db != nil {
		planStore = postgres.NewPostgresPlanStore(db, logger)
	}
	app.planService = service.NewPlanService(planStore, cfg.Cache.PlansTTL, logger)

	logger.Info("application initialized",
		slog.Bool("model_configured", model.Configured()),
		slog.Bool("database_connected", db != nil))
	return app
}

// router returns the HTTP handler for the application.
func (app *application) router() http.Handler {
	return api.NewRouter(app.generator, app.planService, app.logger)
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
