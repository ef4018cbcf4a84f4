package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
)

// defaultPlanEpoch is the creation time reported for built-in plans.
var defaultPlanEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultPlanID returns the stable ID of the built-in plan with the given
// slug. Seeding the database reuses these IDs, so links to a default plan
// keep working once the catalog is stored.
func DefaultPlanID(slug string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("prepwise:plan:"+slug))
}

// DefaultPlans returns a fresh copy of the built-in plan catalog.
func DefaultPlans() []*domain.Plan {
	plans := []*domain.Plan{
		{
			Slug:        "free",
			Name:        "Free",
			Description: "Try the core study tools with daily limits.",
			PriceCents:  0,
			Interval:    domain.PlanIntervalMonthly,
			Features: []string{
				"5 AI quizzes per day",
				"Flashcard generation",
				"AI study chat",
			},
			SortOrder: 1,
		},
		{
			Slug:        "pro-monthly",
			Name:        "Pro",
			Description: "Unlimited practice across every exam-prep tool.",
			PriceCents:  1900,
			Interval:    domain.PlanIntervalMonthly,
			Features: []string{
				"Unlimited quizzes and flashcards",
				"Document summaries",
				"Resume audits",
				"Mock interviews with answer analysis",
				"Coding and SQL challenges",
			},
			SortOrder: 2,
		},
		{
			Slug:        "pro-yearly",
			Name:        "Pro (Yearly)",
			Description: "Everything in Pro, billed once a year.",
			PriceCents:  19000,
			Interval:    domain.PlanIntervalYearly,
			Features: []string{
				"Everything in Pro",
				"Speaking and writing assessments",
				"Priority generation",
			},
			SortOrder: 3,
		},
	}

	for _, p := range plans {
		p.ID = DefaultPlanID(p.Slug)
		p.Currency = "USD"
		p.Active = true
		p.CreatedAt = defaultPlanEpoch
		p.UpdatedAt = defaultPlanEpoch
	}

	return plans
}

// findDefaultPlan returns the built-in plan with the given ID, or nil.
func findDefaultPlan(id uuid.UUID) *domain.Plan {
	for _, p := range DefaultPlans() {
		if p.ID == id {
			return p
		}
	}
	return nil
}
