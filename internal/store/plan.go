package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
)

// PlanStore defines the interface for study plan persistence.
type PlanStore interface {
	// List returns plans ordered by sort order then name. When activeOnly is
	// true, inactive plans are omitted. Returns an empty slice if there are none.
	List(ctx context.Context, activeOnly bool) ([]*domain.Plan, error)

	// GetByID retrieves a plan by its unique ID.
	// Returns ErrPlanNotFound if the plan does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)

	// Upsert inserts the plan or, when a plan with the same slug exists,
	// updates it in place. The stored ID and creation time are written back
	// into plan. Returns validation errors if the plan is invalid.
	Upsert(ctx context.Context, plan *domain.Plan) error

	// UpsertAll upserts every plan atomically.
	UpsertAll(ctx context.Context, plans []*domain.Plan) error

	// Delete removes a plan.
	// Returns ErrPlanNotFound if the plan does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlanStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PlanStore
}
