package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/prepwise-api/internal/api/middleware"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// NewRouter builds the HTTP router with every route and the shared
// middleware chain.
func NewRouter(generator generation.Generator, planService service.PlanService, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.Default()
	}

	genHandler := NewGenerationHandler(generator, logger)
	planHandler := NewPlanHandler(planService, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewTraceMiddleware(logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/ai", func(r chi.Router) {
			r.Post("/chat", genHandler.Chat)
			r.Post("/generate", genHandler.Generate)
			r.Post("/quiz", genHandler.GenerateQuiz)
			r.Post("/flashcards", genHandler.GenerateFlashcards)
			r.Post("/summary", genHandler.SummarizeDocument)
			r.Post("/resume", genHandler.AuditResume)
			r.Post("/speaking", genHandler.AssessSpeaking)
			r.Post("/writing", genHandler.AssessWriting)
			r.Post("/interview/questions", genHandler.GenerateInterviewQuestions)
			r.Post("/interview/analysis", genHandler.AnalyzeInterviewAnswer)
			r.Post("/coding/challenge", genHandler.GenerateCodingChallenge)
			r.Post("/coding/evaluate", genHandler.EvaluateCode)
			r.Post("/sql/challenge", genHandler.GenerateSQLChallenge)
		})

		r.Get("/plans", planHandler.ListPlans)
		r.Get("/plans/{id}", planHandler.GetPlan)
	})

	return r
}
