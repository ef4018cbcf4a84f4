package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// DefaultPlansTTL is used when NewPlanService is given a non-positive TTL.
const DefaultPlansTTL = 5 * time.Minute

const activePlansKey = "plans:active"

// PlanService provides study-plan catalog operations.
type PlanService interface {
	// ListPlans returns the active plans. Store failures, a missing store and
	// an empty catalog all yield the default plans instead of an error.
	ListPlans(ctx context.Context) ([]*domain.Plan, error)

	// GetPlan returns the plan with the given ID, consulting the default
	// catalog when the store cannot answer. Returns ErrPlanNotFound when
	// neither has it.
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error)

	// SeedDefaults upserts the default catalog into the store and returns the
	// number of plans written. Returns ErrStoreUnavailable without a store.
	SeedDefaults(ctx context.Context) (int, error)
}

// planServiceImpl implements the PlanService interface
type planServiceImpl struct {
	planStore store.PlanStore
	cache     *cache.Cache
	logger    *slog.Logger
}

// NewPlanService creates a new PlanService.
// planStore may be nil when no database is configured; listings then always
// come from the default catalog.
func NewPlanService(planStore store.PlanStore, ttl time.Duration, logger *slog.Logger) PlanService {
	if ttl <= 0 {
		ttl = DefaultPlansTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &planServiceImpl{
		planStore: planStore,
		cache:     cache.New(ttl, 2*ttl),
		logger:    logger.With(slog.String("component", "plan_service")),
	}
}

// ListPlans implements PlanService.ListPlans
func (s *planServiceImpl) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if cached, ok := s.cache.Get(activePlansKey); ok {
		log.Debug("serving plans from cache")
		return cached.([]*domain.Plan), nil
	}

	plans := s.loadActivePlans(ctx, log)
	s.cache.SetDefault(activePlansKey, plans)
	return plans, nil
}

func (s *planServiceImpl) loadActivePlans(ctx context.Context, log *slog.Logger) []*domain.Plan {
	if s.planStore == nil {
		log.Debug("no plan store configured, using default plans")
		return DefaultPlans()
	}

	plans, err := s.planStore.List(ctx, true)
	if err != nil {
		log.Warn("failed to list plans, falling back to default plans",
			slog.String("error", redact.Error(err)))
		return DefaultPlans()
	}

	if len(plans) == 0 {
		log.Info("plan catalog is empty, using default plans")
		return DefaultPlans()
	}

	return plans
}

// GetPlan implements PlanService.GetPlan
func (s *planServiceImpl) GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("plan_id", id.String()))

	if s.planStore != nil {
		plan, err := s.planStore.GetByID(ctx, id)
		if err == nil {
			return plan, nil
		}
		if !errors.Is(err, store.ErrPlanNotFound) {
			log.Warn("failed to get plan, checking default plans",
				slog.String("error", redact.Error(err)))
		}
	}

	if plan := findDefaultPlan(id); plan != nil {
		log.Debug("serving default plan")
		return plan, nil
	}

	return nil, ErrPlanNotFound
}

// SeedDefaults implements PlanService.SeedDefaults
func (s *planServiceImpl) SeedDefaults(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.planStore == nil {
		return 0, ErrStoreUnavailable
	}

	plans := DefaultPlans()
	if err := s.planStore.UpsertAll(ctx, plans); err != nil {
		log.Error("failed to seed default plans", slog.String("error", redact.Error(err)))
		return 0, NewPlanServiceError("seed_defaults", "failed to upsert default plans", err)
	}

	s.cache.Delete(activePlansKey)
	log.Info("seeded default plans", slog.Int("count", len(plans)))
	return len(plans), nil
}
