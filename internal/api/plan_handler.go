package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// PlanHandler serves the study-plan catalog.
type PlanHandler struct {
	planService service.PlanService
	logger      *slog.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, logger *slog.Logger) *PlanHandler {
	if planService == nil {
		panic("planService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PlanHandler{
		planService: planService,
		logger:      logger.With(slog.String("component", "plan_handler")),
	}
}

// ListPlans handles GET /api/plans
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list plans")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plans)
}

// GetPlan handles GET /api/plans/{id}
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		log.Debug("invalid plan id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get plan")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}
