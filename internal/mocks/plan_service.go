package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// MockPlanService implements service.PlanService for testing
type MockPlanService struct {
	ListPlansFn    func(ctx context.Context) ([]*domain.Plan, error)
	GetPlanFn      func(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	SeedDefaultsFn func(ctx context.Context) (int, error)
}

var _ service.PlanService = (*MockPlanService)(nil)

// ListPlans implements the PlanService interface
func (m *MockPlanService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	if m.ListPlansFn != nil {
		return m.ListPlansFn(ctx)
	}
	return service.DefaultPlans(), nil
}

// GetPlan implements the PlanService interface
func (m *MockPlanService) GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	if m.GetPlanFn != nil {
		return m.GetPlanFn(ctx, id)
	}
	return nil, service.ErrPlanNotFound
}

// SeedDefaults implements the PlanService interface
func (m *MockPlanService) SeedDefaults(ctx context.Context) (int, error) {
	if m.SeedDefaultsFn != nil {
		return m.SeedDefaultsFn(ctx)
	}
	return len(service.DefaultPlans()), nil
}
