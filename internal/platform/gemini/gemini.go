package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/prepwise-api/internal/config"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/retry"
	"google.golang.org/genai"
)

// jsonMIMEType constrains strict JSON responses.
const jsonMIMEType = "application/json"

// statusResourceExhausted is the provider status for quota errors.
const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// contentGenerator is the subset of *genai.Models used by the adapter.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Model implements generation.Model against the Gemini API. One Model is
// created at startup and shared by all requests.
type Model struct {
	models        contentGenerator
	modelName     string
	jsonModelName string
	logger        *slog.Logger
}

// Compile-time check that Model implements generation.Model.
var _ generation.Model = (*Model)(nil)

// New creates the Gemini adapter.
//
// It never fails: when the API key is missing or the client cannot be
// created, the problem is logged at ERROR with severity=critical and the
// returned Model answers every call with generation.ErrNotConfigured.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "gemini"))

	m := &Model{
		modelName:     cfg.ModelName,
		jsonModelName: cfg.JSONModelName,
		logger:        logger,
	}

	if cfg.APIKey == "" {
		logger.ErrorContext(ctx, "no model API key configured, generation requests will fail",
			"severity", "critical")
		return m
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create Gemini client, generation requests will fail",
			"severity", "critical",
			"error", redact.Error(err))
		return m
	}

	m.models = client.Models
	logger.InfoContext(ctx, "Gemini client initialised",
		"model", cfg.ModelName,
		"json_model", cfg.JSONModelName)

	return m
}

// Configured reports whether the adapter has a usable client.
func (m *Model) Configured() bool {
	return m.models != nil
}

// Generate sends the request's history followed by its prompt as a user turn.
func (m *Model) Generate(ctx context.Context, req generation.Request) (string, error) {
	if m.models == nil {
		return "", generation.ErrNotConfigured
	}

	modelName, cfg := m.configFor(req)

	resp, err := m.models.GenerateContent(ctx, modelName, buildContents(req), cfg)
	if err != nil {
		return "", translateError(err)
	}

	return responseText(resp)
}

// configFor selects the model and generation config for the request mode.
func (m *Model) configFor(req generation.Request) (string, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{}
	modelName := m.modelName

	if req.Mode == generation.ModeStrictJSON {
		cfg.ResponseMIMEType = jsonMIMEType
		modelName = m.jsonModelName
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = req.MaxOutputTokens
	}

	return modelName, cfg
}

func buildContents(req generation.Request) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Speaker)))
	}
	return append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response from model", generation.ErrGenerationFailed)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrGenerationFailed)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return sb.String(), nil
}

// translateError marks quota failures as rate limited so the pipeline
// retries them. Other errors are returned unchanged.
func translateError(err error) error {
	if isQuotaError(err) {
		return fmt.Errorf("%w: %w", retry.ErrRateLimited, err)
	}
	return err
}

func isQuotaError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == statusResourceExhausted
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == statusResourceExhausted
	}

	return false
}
