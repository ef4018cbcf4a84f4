package generation

import (
	"context"

	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/prompt"
)

// GenerateQuiz creates a multiple-choice quiz.
func (s *Service) GenerateQuiz(ctx context.Context, p prompt.QuizParams) (*domain.Quiz, error) {
	return generateTyped[domain.Quiz](ctx, s, string(prompt.FeatureQuiz), func() (string, error) {
		return prompt.Quiz(p)
	})
}

// GenerateFlashcards creates a flashcard deck.
func (s *Service) GenerateFlashcards(ctx context.Context, p prompt.FlashcardParams) (*domain.FlashcardSet, error) {
	return generateTyped[domain.FlashcardSet](ctx, s, string(prompt.FeatureFlashcards), func() (string, error) {
		return prompt.Flashcards(p)
	})
}

// SummarizeDocument condenses a document into a summary with key points.
func (s *Service) SummarizeDocument(ctx context.Context, p prompt.SummaryParams) (*domain.DocumentSummary, error) {
	return generateTyped[domain.DocumentSummary](ctx, s, string(prompt.FeatureSummary), func() (string, error) {
		return prompt.Summary(p)
	})
}

// AuditResume scores a resume against a job description.
func (s *Service) AuditResume(ctx context.Context, p prompt.ResumeParams) (*domain.ResumeAudit, error) {
	return generateTyped[domain.ResumeAudit](ctx, s, string(prompt.FeatureResume), func() (string, error) {
		return prompt.Resume(p)
	})
}

// AssessSpeaking scores a spoken answer from its transcript.
func (s *Service) AssessSpeaking(
	ctx context.Context,
	p prompt.SpeakingParams,
) (*domain.LanguageAssessment, error) {
	return generateTyped[domain.LanguageAssessment](ctx, s, string(prompt.FeatureSpeaking), func() (string, error) {
		return prompt.Speaking(p)
	})
}

// AssessWriting scores an essay.
func (s *Service) AssessWriting(ctx context.Context, p prompt.WritingParams) (*domain.LanguageAssessment, error) {
	return generateTyped[domain.LanguageAssessment](ctx, s, string(prompt.FeatureWriting), func() (string, error) {
		return prompt.Writing(p)
	})
}

// GenerateInterviewQuestions creates interview questions for a role.
func (s *Service) GenerateInterviewQuestions(
	ctx context.Context,
	p prompt.InterviewQuestionParams,
) (*domain.InterviewQuestionSet, error) {
	return generateTyped[domain.InterviewQuestionSet](
		ctx, s, string(prompt.FeatureInterviewQuestions),
		func() (string, error) {
			return prompt.InterviewQuestions(p)
		},
	)
}

// AnalyzeInterviewAnswer gives feedback on a candidate's answer.
func (s *Service) AnalyzeInterviewAnswer(
	ctx context.Context,
	p prompt.AnswerAnalysisParams,
) (*domain.AnswerAnalysis, error) {
	return generateTyped[domain.AnswerAnalysis](ctx, s, string(prompt.FeatureInterviewAnalysis), func() (string, error) {
		return prompt.InterviewAnalysis(p)
	})
}

// GenerateCodingChallenge creates a programming exercise.
func (s *Service) GenerateCodingChallenge(
	ctx context.Context,
	p prompt.CodingChallengeParams,
) (*domain.CodingChallenge, error) {
	return generateTyped[domain.CodingChallenge](ctx, s, string(prompt.FeatureCodingChallenge), func() (string, error) {
		return prompt.CodingChallenge(p)
	})
}

// EvaluateCode reviews a submitted solution.
func (s *Service) EvaluateCode(ctx context.Context, p prompt.CodeEvaluationParams) (*domain.CodeEvaluation, error) {
	return generateTyped[domain.CodeEvaluation](ctx, s, string(prompt.FeatureCodingEvaluation), func() (string, error) {
		return prompt.CodingEvaluation(p)
	})
}

// GenerateSQLChallenge creates a SQL exercise with its schema.
func (s *Service) GenerateSQLChallenge(ctx context.Context, p prompt.SQLChallengeParams) (*domain.SQLChallenge, error) {
	return generateTyped[domain.SQLChallenge](ctx, s, string(prompt.FeatureSQLChallenge), func() (string, error) {
		return prompt.SQLChallenge(p)
	})
}
