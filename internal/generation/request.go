package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
)

// Mode selects how the model is asked to answer.
type Mode int

const (
	// ModeFreeText asks for an unconstrained text answer.
	ModeFreeText Mode = iota
	// ModeStrictJSON asks for a JSON document only.
	ModeStrictJSON
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeStrictJSON:
		return "strict_json"
	default:
		return "free_text"
	}
}

// Request is a single call to the hosted model.
type Request struct {
	// ID correlates the attempts of one request in logs.
	ID      uuid.UUID
	Prompt  string
	History []domain.ChatTurn
	Mode    Mode
	// MaxOutputTokens caps the answer length. Zero leaves the provider default.
	MaxOutputTokens int32
}

// Model is the port to a hosted language model. Implementations must be safe
// for concurrent use and should wrap rate-limit failures with
// retry.ErrRateLimited so the service retries them.
type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// HistoryEntry is a conversation turn as sent by the web client.
type HistoryEntry struct {
	Role  string `json:"role"`
	Parts Parts  `json:"parts"`
}

// Parts is the text of a history entry. The client sends either a plain
// string or an array of {"text": ...} objects; both decode into Parts.
type Parts string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parts) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*p = Parts(text)
		return nil
	}

	var segments []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &segments); err != nil {
		return err
	}

	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		texts = append(texts, s.Text)
	}
	*p = Parts(strings.Join(texts, ""))
	return nil
}

// NormalizeHistory converts client history into model turns. The role "ai"
// becomes the model speaker and every other role the user. Leading model
// turns are dropped because a conversation sent to the model must open with
// a user turn. Order is preserved.
func NormalizeHistory(entries []HistoryEntry) []domain.ChatTurn {
	turns := make([]domain.ChatTurn, 0, len(entries))
	for _, e := range entries {
		speaker := domain.SpeakerFromRole(e.Role)
		if len(turns) == 0 && speaker == domain.SpeakerModel {
			continue
		}
		turns = append(turns, domain.ChatTurn{Speaker: speaker, Text: string(e.Parts)})
	}
	return turns
}
