package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
)

// GenerationHandler serves the AI endpoints. Handlers only translate
// between HTTP and the generator; all prompting, retrying and parsing
// happens behind generation.Generator.
type GenerationHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generator generation.Generator, logger *slog.Logger) *GenerationHandler {
	if generator == nil {
		panic("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "generation_handler")),
	}
}

// serveFeature decodes a Req, runs it and writes the result as JSON.
func serveFeature[Req any, Res any](
	h *GenerationHandler,
	w http.ResponseWriter,
	r *http.Request,
	feature string,
	run func(ctx context.Context, req Req) (Res, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger).With(slog.String("feature", feature))

	var req Req
	if !decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	result, err := run(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate content")
		return
	}

	log.Debug("generation request completed", slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Chat handles POST /api/ai/chat
func (h *GenerationHandler) Chat(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "chat", func(ctx context.Context, req ChatRequest) (*domain.ChatReply, error) {
		return h.generator.Chat(ctx, req.Message, req.History)
	})
}

// Generate handles POST /api/ai/generate
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "generate", func(ctx context.Context, req GenerateRequest) (map[string]any, error) {
		return h.generator.GenerateJSON(ctx, req.Prompt)
	})
}

// GenerateQuiz handles POST /api/ai/quiz
func (h *GenerationHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "quiz", func(ctx context.Context, req QuizRequest) (*domain.Quiz, error) {
		return h.generator.GenerateQuiz(ctx, req.Params())
	})
}

// GenerateFlashcards handles POST /api/ai/flashcards
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "flashcards", func(ctx context.Context, req FlashcardRequest) (*domain.FlashcardSet, error) {
		return h.generator.GenerateFlashcards(ctx, req.Params())
	})
}

// SummarizeDocument handles POST /api/ai/summary
func (h *GenerationHandler) SummarizeDocument(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "summary", func(ctx context.Context, req SummaryRequest) (*domain.DocumentSummary, error) {
		return h.generator.SummarizeDocument(ctx, req.Params())
	})
}

// AuditResume handles POST /api/ai/resume
func (h *GenerationHandler) AuditResume(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "resume", func(ctx context.Context, req ResumeRequest) (*domain.ResumeAudit, error) {
		return h.generator.AuditResume(ctx, req.Params())
	})
}

// AssessSpeaking handles POST /api/ai/speaking
func (h *GenerationHandler) AssessSpeaking(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "speaking", func(ctx context.Context, req SpeakingRequest) (*domain.LanguageAssessment, error) {
		return h.generator.AssessSpeaking(ctx, req.Params())
	})
}

// AssessWriting handles POST /api/ai/writing
func (h *GenerationHandler) AssessWriting(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "writing", func(ctx context.Context, req WritingRequest) (*domain.LanguageAssessment, error) {
		return h.generator.AssessWriting(ctx, req.Params())
	})
}

// GenerateInterviewQuestions handles POST /api/ai/interview/questions
func (h *GenerationHandler) GenerateInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "interview_questions",
		func(ctx context.Context, req InterviewQuestionsRequest) (*domain.InterviewQuestionSet, error) {
			return h.generator.GenerateInterviewQuestions(ctx, req.Params())
		})
}

// AnalyzeInterviewAnswer handles POST /api/ai/interview/analysis
func (h *GenerationHandler) AnalyzeInterviewAnswer(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "interview_analysis",
		func(ctx context.Context, req AnswerAnalysisRequest) (*domain.AnswerAnalysis, error) {
			return h.generator.AnalyzeInterviewAnswer(ctx, req.Params())
		})
}

// GenerateCodingChallenge handles POST /api/ai/coding/challenge
func (h *GenerationHandler) GenerateCodingChallenge(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "coding_challenge",
		func(ctx context.Context, req CodingChallengeRequest) (*domain.CodingChallenge, error) {
			return h.generator.GenerateCodingChallenge(ctx, req.Params())
		})
}

// EvaluateCode handles POST /api/ai/coding/evaluate
func (h *GenerationHandler) EvaluateCode(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "coding_evaluation",
		func(ctx context.Context, req CodeEvaluationRequest) (*domain.CodeEvaluation, error) {
			return h.generator.EvaluateCode(ctx, req.Params())
		})
}

// GenerateSQLChallenge handles POST /api/ai/sql/challenge
func (h *GenerationHandler) GenerateSQLChallenge(w http.ResponseWriter, r *http.Request) {
	serveFeature(h, w, r, "sql_challenge", func(ctx context.Context, req SQLChallengeRequest) (*domain.SQLChallenge, error) {
		return h.generator.GenerateSQLChallenge(ctx, req.Params())
	})
}
