package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrServiceBusy is returned when the model kept rate limiting the request
	// after every retry was spent.
	ErrServiceBusy = errors.New("model rate limit persisted after retries")

	// ErrGenerationFailed is returned when generation fails for any other reason.
	// The underlying cause stays in the error chain.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrSchemaMismatch is returned when the model produced valid JSON that does
	// not match the shape the feature expects. It wraps ErrGenerationFailed.
	ErrSchemaMismatch = wrapFailed("response did not match the expected schema")

	// ErrContentBlocked is returned when the provider refused to answer for
	// safety reasons. It wraps ErrGenerationFailed.
	ErrContentBlocked = wrapFailed("content blocked by model safety filters")

	// ErrNotConfigured is returned when no model client is available, usually
	// because no API key was configured. It wraps ErrGenerationFailed.
	ErrNotConfigured = wrapFailed("model client is not configured")
)

// failedError is a sentinel that also matches ErrGenerationFailed.
type failedError struct {
	msg string
}

func wrapFailed(msg string) error {
	return &failedError{msg: msg}
}

func (e *failedError) Error() string { return e.msg }

func (e *failedError) Unwrap() error { return ErrGenerationFailed }
