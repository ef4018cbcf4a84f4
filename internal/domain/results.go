package domain

import "fmt"

// The types in this file describe the JSON objects the model is asked to
// return for each feature. Field tags drive both decoding and schema
// validation of the parsed model output.

// Quiz is a set of multiple-choice questions on a topic.
type Quiz struct {
	Title     string         `json:"title"     validate:"required"`
	Questions []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question     string   `json:"question"      validate:"required"`
	Options      []string `json:"options"       validate:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Validate checks constraints that struct tags cannot express.
func (q *Quiz) Validate() error {
	for i, question := range q.Questions {
		if question.CorrectIndex >= len(question.Options) {
			return NewValidationError(
				fmt.Sprintf("questions[%d].correct_index", i),
				fmt.Sprintf("out of range for %d options", len(question.Options)),
				ErrValidation,
			)
		}
	}
	return nil
}

// FlashcardSet is a deck of generated flashcards.
type FlashcardSet struct {
	Cards []Flashcard `json:"cards" validate:"required,min=1,dive"`
}

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Front string   `json:"front"          validate:"required"`
	Back  string   `json:"back"           validate:"required"`
	Hint  string   `json:"hint,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// DocumentSummary condenses uploaded study material.
type DocumentSummary struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"    validate:"required"`
	KeyPoints []string  `json:"key_points" validate:"dive,required"`
	KeyTerms  []KeyTerm `json:"key_terms"  validate:"dive"`
}

// KeyTerm is a glossary entry extracted from a document.
type KeyTerm struct {
	Term       string `json:"term"       validate:"required"`
	Definition string `json:"definition" validate:"required"`
}

// ResumeAudit compares a resume against a job description.
type ResumeAudit struct {
	MatchScore      float64  `json:"match_score"      validate:"gte=0,lte=100"`
	Summary         string   `json:"summary"          validate:"required"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}

// LanguageAssessment scores a spoken transcript or a written essay.
type LanguageAssessment struct {
	OverallScore float64          `json:"overall_score" validate:"gte=0,lte=100"`
	Criteria     []CriterionScore `json:"criteria"      validate:"dive"`
	Feedback     string           `json:"feedback"      validate:"required"`
	Corrections  []Correction     `json:"corrections"   validate:"dive"`
}

// CriterionScore is the score for one assessment criterion (e.g. fluency).
type CriterionScore struct {
	Name     string  `json:"name"     validate:"required"`
	Score    float64 `json:"score"    validate:"gte=0,lte=100"`
	Feedback string  `json:"feedback"`
}

// Correction pairs an original phrase with an improved version.
type Correction struct {
	Original   string `json:"original"   validate:"required"`
	Suggestion string `json:"suggestion" validate:"required"`
}

// InterviewQuestionSet is a list of generated interview questions.
type InterviewQuestionSet struct {
	Questions []InterviewQuestion `json:"questions" validate:"required,min=1,dive"`
}

// InterviewQuestion is a single interview question.
type InterviewQuestion struct {
	Question      string `json:"question"        validate:"required"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	WhatToLookFor string `json:"what_to_look_for,omitempty"`
}

// AnswerAnalysis is the feedback on a candidate's interview answer.
type AnswerAnalysis struct {
	Score        float64  `json:"score"         validate:"gte=0,lte=10"`
	Feedback     string   `json:"feedback"      validate:"required"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	SampleAnswer string   `json:"sample_answer,omitempty"`
}

// CodingChallenge is a generated programming exercise.
type CodingChallenge struct {
	Title       string          `json:"title"        validate:"required"`
	Description string          `json:"description"  validate:"required"`
	Difficulty  string          `json:"difficulty"`
	Examples    []CodingExample `json:"examples"     validate:"dive"`
	Constraints []string        `json:"constraints"`
	StarterCode string          `json:"starter_code"`
	TestCases   []TestCase      `json:"test_cases"   validate:"dive"`
}

// CodingExample illustrates the expected behaviour of a solution.
type CodingExample struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// TestCase is an input with its expected output.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// CodeEvaluation is the review of a submitted solution.
type CodeEvaluation struct {
	Correct         bool     `json:"correct"`
	Score           float64  `json:"score"            validate:"gte=0,lte=100"`
	TimeComplexity  string   `json:"time_complexity"`
	SpaceComplexity string   `json:"space_complexity"`
	Feedback        string   `json:"feedback"         validate:"required"`
	Issues          []string `json:"issues"`
	Suggestions     []string `json:"suggestions"`
}

// SQLChallenge is a generated SQL exercise with its schema.
type SQLChallenge struct {
	Title         string   `json:"title"          validate:"required"`
	Description   string   `json:"description"    validate:"required"`
	Difficulty    string   `json:"difficulty"`
	Schema        string   `json:"schema"         validate:"required"`
	SampleData    string   `json:"sample_data"`
	ExpectedQuery string   `json:"expected_query" validate:"required"`
	Hints         []string `json:"hints"`
}
