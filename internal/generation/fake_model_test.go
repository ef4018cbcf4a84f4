package generation_test

import (
	"context"
	"sync"

	"github.com/phrazzld/prepwise-api/internal/generation"
)

// fakeModel replays scripted responses and records every request.
type fakeModel struct {
	mu        sync.Mutex
	responses []fakeResponse
	requests  []generation.Request
}

type fakeResponse struct {
	text string
	err  error
}

func newFakeModel(responses ...fakeResponse) *fakeModel {
	return &fakeModel{responses: responses}
}

// Generate returns the next scripted response. The last response repeats
// once the script runs out.
func (m *fakeModel) Generate(_ context.Context, req generation.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	idx := len(m.requests) - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	r := m.responses[idx]
	return r.text, r.err
}

func (m *fakeModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *fakeModel) lastRequest() generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}
