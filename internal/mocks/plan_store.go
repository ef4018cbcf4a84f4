package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// MockPlanStore implements store.PlanStore for testing
type MockPlanStore struct {
	// Function fields for customizable behavior
	ListFn      func(ctx context.Context, activeOnly bool) ([]*domain.Plan, error)
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	UpsertFn    func(ctx context.Context, plan *domain.Plan) error
	UpsertAllFn func(ctx context.Context, plans []*domain.Plan) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	mu        sync.Mutex
	Plans     map[uuid.UUID]*domain.Plan
	ListCalls int
}

// NewMockPlanStore creates a new mock store with initialized defaults
func NewMockPlanStore() *MockPlanStore {
	return &MockPlanStore{
		Plans: make(map[uuid.UUID]*domain.Plan),
	}
}

var _ store.PlanStore = (*MockPlanStore)(nil)

// List implements the PlanStore interface
func (m *MockPlanStore) List(ctx context.Context, activeOnly bool) ([]*domain.Plan, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	plans := make([]*domain.Plan, 0, len(m.Plans))
	for _, p := range m.Plans {
		if activeOnly && !p.Active {
			continue
		}
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].SortOrder != plans[j].SortOrder {
			return plans[i].SortOrder < plans[j].SortOrder
		}
		return plans[i].Name < plans[j].Name
	})
	return plans, nil
}

// GetByID implements the PlanStore interface
func (m *MockPlanStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	plan, ok := m.Plans[id]
	if !ok {
		return nil, store.ErrPlanNotFound
	}
	return plan, nil
}

// Upsert implements the PlanStore interface
func (m *MockPlanStore) Upsert(ctx context.Context, plan *domain.Plan) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, plan)
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.Plans {
		if existing.Slug == plan.Slug {
			plan.ID = id
			break
		}
	}
	m.Plans[plan.ID] = plan
	return nil
}

// UpsertAll implements the PlanStore interface
func (m *MockPlanStore) UpsertAll(ctx context.Context, plans []*domain.Plan) error {
	if m.UpsertAllFn != nil {
		return m.UpsertAllFn(ctx, plans)
	}
	for _, p := range plans {
		if err := m.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Delete implements the PlanStore interface
func (m *MockPlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Plans[id]; !ok {
		return store.ErrPlanNotFound
	}
	delete(m.Plans, id)
	return nil
}

// WithTx implements the PlanStore interface. The mock ignores transactions.
func (m *MockPlanStore) WithTx(tx *sql.Tx) store.PlanStore {
	return m
}
