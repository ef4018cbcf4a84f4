package api

import (
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/prompt"
)

// Request bodies for the AI endpoints. Apart from the chat message and the
// raw prompt, fields are passed through to the prompt templates as given;
// blank values are allowed. Counts of zero select the template default.

// ChatRequest defines the payload for the chat endpoint.
type ChatRequest struct {
	Message string                    `json:"message" validate:"required"`
	History []generation.HistoryEntry `json:"history"`
}

// ChatResponse defines the successful response for the chat endpoint.
type ChatResponse struct {
	Text string `json:"text"`
}

// GenerateRequest defines the payload for raw JSON generation.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// QuizRequest defines the payload for quiz generation.
type QuizRequest struct {
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	Count      int    `json:"count"      validate:"gte=0,lte=50"`
	Difficulty string `json:"difficulty"`
}

// Params converts the request into prompt parameters.
func (r QuizRequest) Params() prompt.QuizParams {
	return prompt.QuizParams{Subject: r.Subject, Topic: r.Topic, Count: r.Count, Difficulty: r.Difficulty}
}

// FlashcardRequest defines the payload for flashcard generation.
type FlashcardRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Count   int    `json:"count"   validate:"gte=0,lte=50"`
}

// Params converts the request into prompt parameters.
func (r FlashcardRequest) Params() prompt.FlashcardParams {
	return prompt.FlashcardParams{Subject: r.Subject, Topic: r.Topic, Count: r.Count}
}

// SummaryRequest defines the payload for document summarisation.
type SummaryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Params converts the request into prompt parameters.
func (r SummaryRequest) Params() prompt.SummaryParams {
	return prompt.SummaryParams{Title: r.Title, Content: r.Content}
}

// ResumeRequest defines the payload for a resume audit.
type ResumeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// Params converts the request into prompt parameters.
func (r ResumeRequest) Params() prompt.ResumeParams {
	return prompt.ResumeParams{ResumeText: r.ResumeText, JobDescription: r.JobDescription}
}

// SpeakingRequest defines the payload for a speaking assessment.
type SpeakingRequest struct {
	Prompt     string `json:"prompt"`
	Transcript string `json:"transcript"`
}

// Params converts the request into prompt parameters.
func (r SpeakingRequest) Params() prompt.SpeakingParams {
	return prompt.SpeakingParams{Prompt: r.Prompt, Transcript: r.Transcript}
}

// WritingRequest defines the payload for a writing assessment.
type WritingRequest struct {
	Prompt string `json:"prompt"`
	Essay  string `json:"essay"`
}

// Params converts the request into prompt parameters.
func (r WritingRequest) Params() prompt.WritingParams {
	return prompt.WritingParams{Prompt: r.Prompt, Essay: r.Essay}
}

// InterviewQuestionsRequest defines the payload for interview question generation.
type InterviewQuestionsRequest struct {
	Role  string `json:"role"`
	Level string `json:"level"`
	Focus string `json:"focus"`
	Count int    `json:"count" validate:"gte=0,lte=50"`
}

// Params converts the request into prompt parameters.
func (r InterviewQuestionsRequest) Params() prompt.InterviewQuestionParams {
	return prompt.InterviewQuestionParams{Role: r.Role, Level: r.Level, Focus: r.Focus, Count: r.Count}
}

// AnswerAnalysisRequest defines the payload for interview answer analysis.
type AnswerAnalysisRequest struct {
	Role     string `json:"role"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Params converts the request into prompt parameters.
func (r AnswerAnalysisRequest) Params() prompt.AnswerAnalysisParams {
	return prompt.AnswerAnalysisParams{Role: r.Role, Question: r.Question, Answer: r.Answer}
}

// CodingChallengeRequest defines the payload for coding challenge generation.
type CodingChallengeRequest struct {
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
}

// Params converts the request into prompt parameters.
func (r CodingChallengeRequest) Params() prompt.CodingChallengeParams {
	return prompt.CodingChallengeParams{Language: r.Language, Difficulty: r.Difficulty, Topic: r.Topic}
}

// CodeEvaluationRequest defines the payload for code evaluation.
type CodeEvaluationRequest struct {
	Language string `json:"language"`
	Problem  string `json:"problem"`
	Code     string `json:"code"`
}

// Params converts the request into prompt parameters.
func (r CodeEvaluationRequest) Params() prompt.CodeEvaluationParams {
	return prompt.CodeEvaluationParams{Language: r.Language, Problem: r.Problem, Code: r.Code}
}

// SQLChallengeRequest defines the payload for SQL challenge generation.
type SQLChallengeRequest struct {
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
}

// Params converts the request into prompt parameters.
func (r SQLChallengeRequest) Params() prompt.SQLChallengeParams {
	return prompt.SQLChallengeParams{Difficulty: r.Difficulty, Topic: r.Topic}
}
