package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlanInterval is the billing cadence of a study plan.
type PlanInterval string

// Supported plan intervals.
const (
	PlanIntervalMonthly PlanInterval = "monthly"
	PlanIntervalYearly  PlanInterval = "yearly"
	PlanIntervalOnce    PlanInterval = "once"
)

// Plan-specific validation errors
var (
	// ErrPlanIDEmpty is returned when a plan ID is nil.
	ErrPlanIDEmpty = errors.New("plan ID cannot be empty")

	// ErrPlanSlugEmpty is returned when a plan has no slug.
	ErrPlanSlugEmpty = errors.New("plan slug cannot be empty")

	// ErrPlanNameEmpty is returned when a plan has no display name.
	ErrPlanNameEmpty = errors.New("plan name cannot be empty")

	// ErrPlanPriceNegative is returned when a plan price is below zero.
	ErrPlanPriceNegative = errors.New("plan price cannot be negative")

	// ErrInvalidPlanInterval is returned for an unknown billing interval.
	ErrInvalidPlanInterval = errors.New("invalid plan interval")
)

// Plan is an entry of the study-plan catalog shown on the pricing and admin
// pages.
type Plan struct {
	ID          uuid.UUID    `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	PriceCents  int64        `json:"price_cents"`
	Currency    string       `json:"currency"`
	Interval    PlanInterval `json:"interval"`
	Features    []string     `json:"features"`
	Active      bool         `json:"active"`
	SortOrder   int          `json:"sort_order"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewPlan creates an active Plan with a fresh ID and timestamps.
// Returns an error if validation fails.
func NewPlan(
	slug, name, description string,
	priceCents int64,
	currency string,
	interval PlanInterval,
	features []string,
) (*Plan, error) {
	now := time.Now().UTC()
	plan := &Plan{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Currency:    strings.ToUpper(currency),
		Interval:    interval,
		Features:    features,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Validate checks if the Plan has valid data.
func (p *Plan) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPlanIDEmpty
	}

	if strings.TrimSpace(p.Slug) == "" {
		return ErrPlanSlugEmpty
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrPlanNameEmpty
	}

	if p.PriceCents < 0 {
		return ErrPlanPriceNegative
	}

	switch p.Interval {
	case PlanIntervalMonthly, PlanIntervalYearly, PlanIntervalOnce:
	default:
		return ErrInvalidPlanInterval
	}

	return nil
}
