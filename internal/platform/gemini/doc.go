// Package gemini provides the production generation.Model backed by Google's
// Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture.
// It translates generation requests into Gemini contents, selects the chat
// or JSON model configuration from the request mode, and translates provider
// failures into the errors the generation pipeline understands: quota
// exhaustion becomes retry.ErrRateLimited and safety blocks become
// generation.ErrContentBlocked.
//
// A missing API key does not stop the process. The adapter logs the problem
// once at startup and every call fails with generation.ErrNotConfigured.
package gemini
