package prompt

// Maximum characters kept from free-text inputs before they are interpolated.
const (
	MaxDocumentChars       = 30000
	MaxResumeChars         = 10000
	MaxJobDescriptionChars = 5000
	MaxEssayChars          = 15000
	MaxTranscriptChars     = 10000
	MaxAnswerChars         = 5000
	MaxCodeChars           = 20000
)

// Counts used when the caller does not ask for a specific number of items.
const (
	DefaultQuizQuestions      = 5
	DefaultFlashcards         = 10
	DefaultInterviewQuestions = 5
)

// QuizParams parameterises quiz generation.
type QuizParams struct {
	Subject    string
	Topic      string
	Count      int
	Difficulty string
}

// FlashcardParams parameterises flashcard generation.
type FlashcardParams struct {
	Subject string
	Topic   string
	Count   int
}

// SummaryParams parameterises document summarisation.
type SummaryParams struct {
	Title   string
	Content string
}

// ResumeParams parameterises a resume audit.
type ResumeParams struct {
	ResumeText     string
	JobDescription string
}

// SpeakingParams parameterises a speaking assessment.
type SpeakingParams struct {
	Prompt     string
	Transcript string
}

// WritingParams parameterises a writing assessment.
type WritingParams struct {
	Prompt string
	Essay  string
}

// InterviewQuestionParams parameterises interview question generation.
type InterviewQuestionParams struct {
	Role  string
	Level string
	Focus string
	Count int
}

// AnswerAnalysisParams parameterises the analysis of an interview answer.
type AnswerAnalysisParams struct {
	Role     string
	Question string
	Answer   string
}

// CodingChallengeParams parameterises coding challenge generation.
type CodingChallengeParams struct {
	Language   string
	Difficulty string
	Topic      string
}

// CodeEvaluationParams parameterises the evaluation of a submitted solution.
type CodeEvaluationParams struct {
	Language string
	Problem  string
	Code     string
}

// SQLChallengeParams parameterises SQL challenge generation.
type SQLChallengeParams struct {
	Difficulty string
	Topic      string
}
