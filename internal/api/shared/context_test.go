package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctxWithTrace := WithTraceID(ctx, "abc123def456")
	assert.Equal(t, "abc123def456", GetTraceID(ctxWithTrace))
	assert.Empty(t, GetTraceID(ctx), "original context must be unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)

	assert.Empty(t, GetTraceID(ctx))
}

func TestNewTraceID(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := NewTraceID()
		require.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "trace IDs must be unique")
		seen[id] = true
	}
}

func TestAcceptTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"well formed", "req-1234abcd", true},
		{"empty", "", false},
		{"too short", "abc", false},
		{"header injection", "abc123\r\nX-Evil: 1", false},
		{"too long", "a123456789012345678901234567890123456789012345678901234567890123456789", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AcceptTraceID(tc.incoming)
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
			} else {
				assert.NotEqual(t, tc.incoming, got)
				assert.Len(t, got, 32)
			}
		})
	}
}
