package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"unicode/utf8"
)

// Feature names a prompt template.
type Feature string

// Features with a prompt template.
const (
	FeatureQuiz               Feature = "quiz"
	FeatureFlashcards         Feature = "flashcards"
	FeatureSummary            Feature = "summary"
	FeatureResume             Feature = "resume"
	FeatureSpeaking           Feature = "speaking"
	FeatureWriting            Feature = "writing"
	FeatureInterviewQuestions Feature = "interview_questions"
	FeatureInterviewAnalysis  Feature = "interview_analysis"
	FeatureCodingChallenge    Feature = "coding_challenge"
	FeatureCodingEvaluation   Feature = "coding_evaluation"
	FeatureSQLChallenge       Feature = "sql_challenge"
)

// Features lists every feature with a template, in a stable order.
var Features = []Feature{
	FeatureQuiz,
	FeatureFlashcards,
	FeatureSummary,
	FeatureResume,
	FeatureSpeaking,
	FeatureWriting,
	FeatureInterviewQuestions,
	FeatureInterviewAnalysis,
	FeatureCodingChallenge,
	FeatureCodingEvaluation,
	FeatureSQLChallenge,
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("prompts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// Render executes the template for feature with data.
func Render(feature Feature, data any) (string, error) {
	tmpl := templates.Lookup(string(feature) + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("no prompt template for feature %q", feature)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", feature, err)
	}

	return buf.String(), nil
}

// Truncate returns at most max characters of s without splitting a
// multi-byte character.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

// Quiz builds the quiz generation prompt.
func Quiz(p QuizParams) (string, error) {
	if p.Count <= 0 {
		p.Count = DefaultQuizQuestions
	}
	return Render(FeatureQuiz, p)
}

// Flashcards builds the flashcard generation prompt.
func Flashcards(p FlashcardParams) (string, error) {
	if p.Count <= 0 {
		p.Count = DefaultFlashcards
	}
	return Render(FeatureFlashcards, p)
}

// Summary builds the document summarisation prompt.
func Summary(p SummaryParams) (string, error) {
	p.Content = Truncate(p.Content, MaxDocumentChars)
	return Render(FeatureSummary, p)
}

// Resume builds the resume audit prompt.
func Resume(p ResumeParams) (string, error) {
	p.ResumeText = Truncate(p.ResumeText, MaxResumeChars)
	p.JobDescription = Truncate(p.JobDescription, MaxJobDescriptionChars)
	return Render(FeatureResume, p)
}

// Speaking builds the speaking assessment prompt.
func Speaking(p SpeakingParams) (string, error) {
	p.Transcript = Truncate(p.Transcript, MaxTranscriptChars)
	return Render(FeatureSpeaking, p)
}

// Writing builds the writing assessment prompt.
func Writing(p WritingParams) (string, error) {
	p.Essay = Truncate(p.Essay, MaxEssayChars)
	return Render(FeatureWriting, p)
}

// InterviewQuestions builds the interview question generation prompt.
func InterviewQuestions(p InterviewQuestionParams) (string, error) {
	if p.Count <= 0 {
		p.Count = DefaultInterviewQuestions
	}
	return Render(FeatureInterviewQuestions, p)
}

// InterviewAnalysis builds the interview answer analysis prompt.
func InterviewAnalysis(p AnswerAnalysisParams) (string, error) {
	p.Answer = Truncate(p.Answer, MaxAnswerChars)
	return Render(FeatureInterviewAnalysis, p)
}

// CodingChallenge builds the coding challenge generation prompt.
func CodingChallenge(p CodingChallengeParams) (string, error) {
	return Render(FeatureCodingChallenge, p)
}

// CodingEvaluation builds the code evaluation prompt.
func CodingEvaluation(p CodeEvaluationParams) (string, error) {
	p.Code = Truncate(p.Code, MaxCodeChars)
	return Render(FeatureCodingEvaluation, p)
}

// SQLChallenge builds the SQL challenge generation prompt.
func SQLChallenge(p SQLChallengeParams) (string, error) {
	return Render(FeatureSQLChallenge, p)
}
