package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/generation"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/phrazzld/prepwise-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service busy", fmt.Errorf("%w: rate limited", generation.ErrServiceBusy), http.StatusTooManyRequests},
		{"generation failed", fmt.Errorf("%w: boom", generation.ErrGenerationFailed), http.StatusInternalServerError},
		{"schema mismatch", generation.ErrSchemaMismatch, http.StatusInternalServerError},
		{"not configured", generation.ErrNotConfigured, http.StatusInternalServerError},
		{"plan not found", service.ErrPlanNotFound, http.StatusNotFound},
		{"store not found", store.ErrPlanNotFound, http.StatusNotFound},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"malformed body", fmt.Errorf("%w: eof", shared.ErrMalformedBody), http.StatusBadRequest},
		{"oversized body", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"domain validation", domain.NewValidationError("id", "bad", domain.ErrInvalidID), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, MsgUnexpected, GetSafeErrorMessage(nil))
	assert.Equal(t, MsgServiceBusy, GetSafeErrorMessage(generation.ErrServiceBusy))
	assert.Equal(t, MsgSchemaMismatch, GetSafeErrorMessage(generation.ErrSchemaMismatch))
	assert.Equal(t,
		"Failed to generate content: model client is not configured",
		GetSafeErrorMessage(generation.ErrNotConfigured))
	assert.Equal(t, "Plan not found", GetSafeErrorMessage(service.ErrPlanNotFound))
	assert.Equal(t, MsgUnexpected, GetSafeErrorMessage(errors.New("db password=hunter2")))

	msg := GetSafeErrorMessage(fmt.Errorf("%w: dial postgres://admin:hunter2@db:5432/app", generation.ErrGenerationFailed))
	assert.NotContains(t, msg, "hunter2")
}

type sampleRequest struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"lte=5"`
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(sampleRequest{Count: 9})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Invalid topic: required field", SanitizeValidationError(err))

	err = shared.ValidateRequest(sampleRequest{Topic: "go", Count: 9})
	assert.Equal(t, "Invalid count: out of range", SanitizeValidationError(err))

	assert.Equal(t, "Invalid id: bad", SanitizeValidationError(domain.NewValidationError("id", "bad", domain.ErrValidation)))
	assert.Equal(t, "Invalid request format", SanitizeValidationError(shared.ErrMalformedBody))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
