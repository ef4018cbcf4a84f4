// Package domain contains the core entities and value objects of the
// exam-preparation API: chat turns, the typed results produced by each AI
// feature (quizzes, flashcards, summaries, assessments, challenges) and the
// study-plan catalog. It is independent of any transport, storage or model
// provider.
package domain
