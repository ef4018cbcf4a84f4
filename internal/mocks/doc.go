// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method so tests can
// script behaviour inline:
//
//	gen := &mocks.MockGenerator{
//	    GenerateQuizFn: func(ctx context.Context, p prompt.QuizParams) (*domain.Quiz, error) {
//	        return nil, generation.ErrServiceBusy
//	    },
//	}
//
// When a function field is nil the mock falls back to a simple default:
// MockPlanStore keeps plans in memory, and the other mocks return their Err
// field or a zero value.
package mocks
