package generation

import (
	"context"

	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/prompt"
)

// Generator is the boundary between the HTTP layer and the generation
// pipeline. Every method fails with ErrServiceBusy when the model is still
// rate limiting after all retries, and with an error matching
// ErrGenerationFailed otherwise.
type Generator interface {
	// Chat continues a conversation with a free-text answer.
	Chat(ctx context.Context, message string, history []HistoryEntry) (*domain.ChatReply, error)

	// GenerateJSON runs an arbitrary prompt in strict JSON mode and returns
	// the extracted object without schema validation.
	GenerateJSON(ctx context.Context, promptText string) (map[string]any, error)

	GenerateQuiz(ctx context.Context, p prompt.QuizParams) (*domain.Quiz, error)
	GenerateFlashcards(ctx context.Context, p prompt.FlashcardParams) (*domain.FlashcardSet, error)
	SummarizeDocument(ctx context.Context, p prompt.SummaryParams) (*domain.DocumentSummary, error)
	AuditResume(ctx context.Context, p prompt.ResumeParams) (*domain.ResumeAudit, error)
	AssessSpeaking(ctx context.Context, p prompt.SpeakingParams) (*domain.LanguageAssessment, error)
	AssessWriting(ctx context.Context, p prompt.WritingParams) (*domain.LanguageAssessment, error)
	GenerateInterviewQuestions(
		ctx context.Context,
		p prompt.InterviewQuestionParams,
	) (*domain.InterviewQuestionSet, error)
	AnalyzeInterviewAnswer(ctx context.Context, p prompt.AnswerAnalysisParams) (*domain.AnswerAnalysis, error)
	GenerateCodingChallenge(ctx context.Context, p prompt.CodingChallengeParams) (*domain.CodingChallenge, error)
	EvaluateCode(ctx context.Context, p prompt.CodeEvaluationParams) (*domain.CodeEvaluation, error)
	GenerateSQLChallenge(ctx context.Context, p prompt.SQLChallengeParams) (*domain.SQLChallenge, error)
}

// Compile-time check that Service implements Generator.
var _ Generator = (*Service)(nil)
