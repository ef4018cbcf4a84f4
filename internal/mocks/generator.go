package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/prompt"
)

// MockGenerator implements generation.Generator for testing.
// Unset function fields return Err and a zero-valued result.
type MockGenerator struct {
	ChatFn         func(ctx context.Context, message string, history []generation.HistoryEntry) (*domain.ChatReply, error)
	GenerateJSONFn func(ctx context.Context, promptText string) (map[string]any, error)

	// Feature generators
	GenerateQuizFn               func(ctx context.Context, p prompt.QuizParams) (*domain.Quiz, error)
	GenerateFlashcardsFn         func(ctx context.Context, p prompt.FlashcardParams) (*domain.FlashcardSet, error)
	SummarizeDocumentFn          func(ctx context.Context, p prompt.SummaryParams) (*domain.DocumentSummary, error)
	AuditResumeFn                func(ctx context.Context, p prompt.ResumeParams) (*domain.ResumeAudit, error)
	AssessSpeakingFn             func(ctx context.Context, p prompt.SpeakingParams) (*domain.LanguageAssessment, error)
	AssessWritingFn              func(ctx context.Context, p prompt.WritingParams) (*domain.LanguageAssessment, error)
	GenerateInterviewQuestionsFn func(ctx context.Context, p prompt.InterviewQuestionParams) (*domain.InterviewQuestionSet, error)
	AnalyzeInterviewAnswerFn     func(ctx context.Context, p prompt.AnswerAnalysisParams) (*domain.AnswerAnalysis, error)
	GenerateCodingChallengeFn    func(ctx context.Context, p prompt.CodingChallengeParams) (*domain.CodingChallenge, error)
	EvaluateCodeFn               func(ctx context.Context, p prompt.CodeEvaluationParams) (*domain.CodeEvaluation, error)
	GenerateSQLChallengeFn       func(ctx context.Context, p prompt.SQLChallengeParams) (*domain.SQLChallenge, error)

	// Err is returned by methods without a function field.
	Err error

	mu    sync.Mutex
	calls map[string]int
}

var _ generation.Generator = (*MockGenerator)(nil)

func (m *MockGenerator) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times the named method was called.
func (m *MockGenerator) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Chat implements the generation.Generator interface
func (m *MockGenerator) Chat(
	ctx context.Context,
	message string,
	history []generation.HistoryEntry,
) (*domain.ChatReply, error) {
	m.record("Chat")
	if m.ChatFn != nil {
		return m.ChatFn(ctx, message, history)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.ChatReply{}, nil
}

// GenerateJSON implements the generation.Generator interface
func (m *MockGenerator) GenerateJSON(ctx context.Context, promptText string) (map[string]any, error) {
	m.record("GenerateJSON")
	if m.GenerateJSONFn != nil {
		return m.GenerateJSONFn(ctx, promptText)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return map[string]any{}, nil
}

// GenerateQuiz implements the generation.Generator interface
func (m *MockGenerator) GenerateQuiz(ctx context.Context, p prompt.QuizParams) (*domain.Quiz, error) {
	m.record("GenerateQuiz")
	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Quiz{}, nil
}

// GenerateFlashcards implements the generation.Generator interface
func (m *MockGenerator) GenerateFlashcards(ctx context.Context, p prompt.FlashcardParams) (*domain.FlashcardSet, error) {
	m.record("GenerateFlashcards")
	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.FlashcardSet{}, nil
}

// SummarizeDocument implements the generation.Generator interface
func (m *MockGenerator) SummarizeDocument(ctx context.Context, p prompt.SummaryParams) (*domain.DocumentSummary, error) {
	m.record("SummarizeDocument")
	if m.SummarizeDocumentFn != nil {
		return m.SummarizeDocumentFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.DocumentSummary{}, nil
}

// AuditResume implements the generation.Generator interface
func (m *MockGenerator) AuditResume(ctx context.Context, p prompt.ResumeParams) (*domain.ResumeAudit, error) {
	m.record("AuditResume")
	if m.AuditResumeFn != nil {
		return m.AuditResumeFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.ResumeAudit{}, nil
}

// AssessSpeaking implements the generation.Generator interface
func (m *MockGenerator) AssessSpeaking(ctx context.Context, p prompt.SpeakingParams) (*domain.LanguageAssessment, error) {
	m.record("AssessSpeaking")
	if m.AssessSpeakingFn != nil {
		return m.AssessSpeakingFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.LanguageAssessment{}, nil
}

// AssessWriting implements the generation.Generator interface
func (m *MockGenerator) AssessWriting(ctx context.Context, p prompt.WritingParams) (*domain.LanguageAssessment, error) {
	m.record("AssessWriting")
	if m.AssessWritingFn != nil {
		return m.AssessWritingFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.LanguageAssessment{}, nil
}

// GenerateInterviewQuestions implements the generation.Generator interface
func (m *MockGenerator) GenerateInterviewQuestions(ctx context.Context, p prompt.InterviewQuestionParams) (*domain.InterviewQuestionSet, error) {
	m.record("GenerateInterviewQuestions")
	if m.GenerateInterviewQuestionsFn != nil {
		return m.GenerateInterviewQuestionsFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.InterviewQuestionSet{}, nil
}

// AnalyzeInterviewAnswer implements the generation.Generator interface
func (m *MockGenerator) AnalyzeInterviewAnswer(ctx context.Context, p prompt.AnswerAnalysisParams) (*domain.AnswerAnalysis, error) {
	m.record("AnalyzeInterviewAnswer")
	if m.AnalyzeInterviewAnswerFn != nil {
		return m.AnalyzeInterviewAnswerFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.AnswerAnalysis{}, nil
}

// GenerateCodingChallenge implements the generation.Generator interface
func (m *MockGenerator) GenerateCodingChallenge(ctx context.Context, p prompt.CodingChallengeParams) (*domain.CodingChallenge, error) {
	m.record("GenerateCodingChallenge")
	if m.GenerateCodingChallengeFn != nil {
		return m.GenerateCodingChallengeFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.CodingChallenge{}, nil
}

// EvaluateCode implements the generation.Generator interface
func (m *MockGenerator) EvaluateCode(ctx context.Context, p prompt.CodeEvaluationParams) (*domain.CodeEvaluation, error) {
	m.record("EvaluateCode")
	if m.EvaluateCodeFn != nil {
		return m.EvaluateCodeFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.CodeEvaluation{}, nil
}

// GenerateSQLChallenge implements the generation.Generator interface
func (m *MockGenerator) GenerateSQLChallenge(ctx context.Context, p prompt.SQLChallengeParams) (*domain.SQLChallenge, error) {
	m.record("GenerateSQLChallenge")
	if m.GenerateSQLChallengeFn != nil {
		return m.GenerateSQLChallengeFn(ctx, p)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.SQLChallenge{}, nil
}
