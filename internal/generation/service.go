package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/jsonextract"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/retry"
)

// DefaultChatMaxOutputTokens caps the length of a chat reply.
const DefaultChatMaxOutputTokens int32 = 1000

// Feature names used in logs for calls that have no prompt template.
const (
	featureChat     = "chat"
	featureGenerate = "generate"
)

// Service runs generation requests against a Model. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	model         Model
	logger        *slog.Logger
	validate      *validator.Validate
	maxRetries    int
	initialDelay  time.Duration
	chatMaxTokens int32
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRetryPolicy sets the number of retries after the first attempt and the
// delay before the first retry.
func WithRetryPolicy(maxRetries int, initialDelay time.Duration) Option {
	return func(s *Service) {
		s.maxRetries = maxRetries
		s.initialDelay = initialDelay
	}
}

// WithChatMaxOutputTokens sets the reply length cap for Chat.
func WithChatMaxOutputTokens(n int32) Option {
	return func(s *Service) {
		if n > 0 {
			s.chatMaxTokens = n
		}
	}
}

// NewService creates a Service backed by model.
// It panics if model is nil.
func NewService(model Model, opts ...Option) *Service {
	if model == nil {
		panic("model cannot be nil")
	}

	s := &Service{
		model:         model,
		logger:        slog.Default(),
		validate:      validator.New(),
		maxRetries:    retry.DefaultMaxRetries,
		initialDelay:  retry.DefaultInitialDelay,
		chatMaxTokens: DefaultChatMaxOutputTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "generation_service"))

	return s
}

// Chat continues a conversation. The history is normalised and the message
// is sent as the final user turn in free-text mode.
func (s *Service) Chat(ctx context.Context, message string, history []HistoryEntry) (*domain.ChatReply, error) {
	text, err := s.call(ctx, featureChat, Request{
		Prompt:          message,
		History:         NormalizeHistory(history),
		Mode:            ModeFreeText,
		MaxOutputTokens: s.chatMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &domain.ChatReply{Text: text}, nil
}

// GenerateJSON runs promptText in strict JSON mode and returns the extracted
// object as-is.
func (s *Service) GenerateJSON(ctx context.Context, promptText string) (map[string]any, error) {
	text, err := s.call(ctx, featureGenerate, Request{Prompt: promptText, Mode: ModeStrictJSON})
	if err != nil {
		return nil, err
	}

	obj, err := jsonextract.Object(text)
	if err != nil {
		s.log(ctx).WarnContext(ctx, "model response contained no usable JSON",
			"feature", featureGenerate,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return obj, nil
}

// call sends req to the model, retrying rate-limited attempts, and maps the
// final failure to ErrServiceBusy or ErrGenerationFailed.
func (s *Service) call(ctx context.Context, feature string, req Request) (string, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	log := s.log(ctx).With(
		slog.String("feature", feature),
		slog.String("generation_id", req.ID.String()),
		slog.String("mode", req.Mode.String()),
	)
	log.DebugContext(ctx, "calling model",
		"prompt_length", len(req.Prompt),
		"history_length", len(req.History))

	start := time.Now()
	text, err := retry.Do(ctx,
		func(ctx context.Context) (string, error) {
			return s.model.Generate(ctx, req)
		},
		retry.WithMaxRetries(s.maxRetries),
		retry.WithInitialDelay(s.initialDelay),
		retry.WithNotify(func(attempt int, err error, delay time.Duration) {
			log.WarnContext(ctx, "model rate limited, backing off",
				"attempt", attempt,
				"delay_ms", delay.Milliseconds(),
				"error", redact.Error(err))
		}),
	)
	duration := time.Since(start)

	if err != nil {
		if retry.IsRateLimited(err) {
			log.WarnContext(ctx, "model still rate limited after retries",
				"max_retries", s.maxRetries,
				"duration_ms", duration.Milliseconds())
			return "", fmt.Errorf("%w: %w", ErrServiceBusy, err)
		}

		log.ErrorContext(ctx, "model call failed",
			"duration_ms", duration.Milliseconds(),
			"error", redact.Error(err))
		if errors.Is(err, ErrGenerationFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.InfoContext(ctx, "model call succeeded",
		"duration_ms", duration.Milliseconds(),
		"response_length", len(text))

	return text, nil
}

// validateResult applies struct tag validation and, when the result has one,
// its Validate method.
func (s *Service) validateResult(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return err
	}
	if c, ok := v.(interface{ Validate() error }); ok {
		return c.Validate()
	}
	return nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// generateTyped runs one feature end to end: build the prompt, call the model
// in strict JSON mode, decode the extracted object into T and validate it.
func generateTyped[T any](
	ctx context.Context,
	s *Service,
	feature string,
	build func() (string, error),
) (*T, error) {
	promptText, err := build()
	if err != nil {
		return nil, fmt.Errorf("%w: building %s prompt: %w", ErrGenerationFailed, feature, err)
	}

	text, err := s.call(ctx, feature, Request{Prompt: promptText, Mode: ModeStrictJSON})
	if err != nil {
		return nil, err
	}

	var result T
	if err := jsonextract.Into(text, &result); err != nil {
		s.log(ctx).WarnContext(ctx, "model response contained no usable JSON",
			"feature", feature,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err := s.validateResult(&result); err != nil {
		s.log(ctx).WarnContext(ctx, "model response failed schema validation",
			"feature", feature,
			"error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaMismatch, feature, err)
	}

	return &result, nil
}
