package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/redact"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// User-facing messages for the generation pipeline.
const (
	MsgServiceBusy      = "AI service is busy, please try again later"
	MsgSchemaMismatch   = "AI response did not match the expected format, please try again"
	MsgGenerationFailed = "Failed to generate content"
	MsgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	// Generation errors
	case errors.Is(err, generation.ErrServiceBusy):
		return http.StatusTooManyRequests
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusInternalServerError

	// Not found errors
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Oversized bodies
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	// Bad request errors
	case isRequestError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// isRequestError reports whether err stems from a malformed or invalid
// request body or parameter.
func isRequestError(err error) bool {
	var validationErrs validator.ValidationErrors

	return errors.As(err, &validationErrs) ||
		errors.Is(err, shared.ErrEmptyBody) ||
		errors.Is(err, shared.ErrMalformedBody) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidID)
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Generation failures carry the redacted
// underlying message so the client can show what went wrong.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, generation.ErrServiceBusy):
		return MsgServiceBusy

	case errors.Is(err, generation.ErrSchemaMismatch):
		return MsgSchemaMismatch

	case errors.Is(err, generation.ErrGenerationFailed):
		return fmt.Sprintf("%s: %s", MsgGenerationFailed, redact.Error(err))

	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Plan not found"

	case errors.As(err, &maxBytesErr):
		return "Request body too large"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case isRequestError(err):
		return SanitizeValidationError(err)

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the error response for err. fallbackMessage
// replaces the generic message for errors with no specific mapping.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == MsgUnexpected && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Invalid %s: wrong type", typeErr.Field)
	}

	if errors.Is(err, shared.ErrMalformedBody) {
		return "Invalid request format"
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte", "lte", "gt", "lt":
		return "out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
