package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/store"
)

const planColumns = `id, slug, name, description, price_cents, currency, billing_interval,
	features, active, sort_order, created_at, updated_at`

// PostgresPlanStore implements the store.PlanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlanStore creates a new PostgreSQL implementation of the PlanStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlanStore(db store.DBTX, logger *slog.Logger) *PostgresPlanStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlanStore{
		db:     db,
		logger: logger.With(slog.String("component", "plan_store")),
	}
}

// Ensure PostgresPlanStore implements store.PlanStore interface
var _ store.PlanStore = (*PostgresPlanStore)(nil)

// List implements store.PlanStore.List
func (s *PostgresPlanStore) List(ctx context.Context, activeOnly bool) ([]*domain.Plan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + planColumns + ` FROM plans`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list plans", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("plan", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			log.Error("failed to scan plan row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("plan", "list", "scan failed", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate plan rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("plan", "list", "row iteration failed", MapError(err))
	}

	log.Debug("plans listed", slog.Int("count", len(plans)), slog.Bool("active_only", activeOnly))
	return plans, nil
}

// GetByID implements store.PlanStore.GetByID
// Returns store.ErrPlanNotFound if the plan does not exist.
func (s *PostgresPlanStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`

	plan, err := scanPlan(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("plan not found", slog.String("plan_id", id.String()))
			return nil, store.ErrPlanNotFound
		}
		log.Error("failed to get plan by ID",
			slog.String("error", redact.Error(err)),
			slog.String("plan_id", id.String()))
		return nil, store.NewStoreError("plan", "get", "query failed", MapError(err))
	}

	return plan, nil
}

// Upsert implements store.PlanStore.Upsert
// The plan is matched on slug. The stored ID and creation time are written back.
func (s *PostgresPlanStore) Upsert(ctx context.Context, plan *domain.Plan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := plan.Validate(); err != nil {
		log.Warn("plan validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("slug", plan.Slug))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	features, err := json.Marshal(nonNilFeatures(plan.Features))
	if err != nil {
		return fmt.Errorf("failed to encode plan features: %w", err)
	}

	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	plan.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_cents = EXCLUDED.price_cents,
			currency = EXCLUDED.currency,
			billing_interval = EXCLUDED.billing_interval,
			features = EXCLUDED.features,
			active = EXCLUDED.active,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		plan.ID,
		plan.Slug,
		plan.Name,
		plan.Description,
		plan.PriceCents,
		plan.Currency,
		string(plan.Interval),
		string(features),
		plan.Active,
		plan.SortOrder,
		plan.CreatedAt,
		plan.UpdatedAt,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		log.Error("failed to upsert plan",
			slog.String("error", redact.Error(err)),
			slog.String("slug", plan.Slug))
		return store.NewStoreError("plan", "upsert", "write failed", MapError(err))
	}

	log.Info("plan upserted",
		slog.String("plan_id", plan.ID.String()),
		slog.String("slug", plan.Slug))
	return nil
}

// UpsertAll implements store.PlanStore.UpsertAll
// When the store wraps a *sql.DB the upserts run in one transaction;
// when it already wraps a transaction they join it.
func (s *PostgresPlanStore) UpsertAll(ctx context.Context, plans []*domain.Plan) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return upsertEach(ctx, s, plans)
	}

	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return upsertEach(ctx, s.WithTx(tx), plans)
	})
}

func upsertEach(ctx context.Context, s store.PlanStore, plans []*domain.Plan) error {
	for _, plan := range plans {
		if err := s.Upsert(ctx, plan); err != nil {
			return err
		}
	}
	return nil
}

// Delete implements store.PlanStore.Delete
// Returns store.ErrPlanNotFound if the plan does not exist.
func (s *PostgresPlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete plan",
			slog.String("error", redact.Error(err)),
			slog.String("plan_id", id.String()))
		return store.NewStoreError("plan", "delete", "exec failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPlanNotFound); err != nil {
		return err
	}

	log.Info("plan deleted", slog.String("plan_id", id.String()))
	return nil
}

// WithTx implements store.PlanStore.WithTx
func (s *PostgresPlanStore) WithTx(tx *sql.Tx) store.PlanStore {
	return &PostgresPlanStore{
		db:     tx,
		logger: s.logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		plan     domain.Plan
		interval string
		features []byte
	)

	if err := row.Scan(
		&plan.ID,
		&plan.Slug,
		&plan.Name,
		&plan.Description,
		&plan.PriceCents,
		&plan.Currency,
		&interval,
		&features,
		&plan.Active,
		&plan.SortOrder,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	); err != nil {
		return nil, err
	}

	plan.Interval = domain.PlanInterval(interval)
	if len(features) > 0 {
		if err := json.Unmarshal(features, &plan.Features); err != nil {
			return nil, fmt.Errorf("failed to decode plan features: %w", err)
		}
	}
	plan.Features = nonNilFeatures(plan.Features)

	return &plan, nil
}

func nonNilFeatures(features []string) []string {
	if features == nil {
		return []string{}
	}
	return features
}
