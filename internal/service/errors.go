package service

import (
	"errors"
	"fmt"
)

// Common service errors. The API layer maps these to HTTP status codes.
var (
	// ErrPlanNotFound indicates that no plan exists with the requested ID,
	// neither in the store nor in the default catalog.
	// API layer should map this to HTTP 404 Not Found.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrStoreUnavailable indicates an operation that needs the database was
	// called while no database is configured.
	ErrStoreUnavailable = errors.New("plan store is not configured")
)

// PlanServiceError wraps errors from the plan service with context.
type PlanServiceError struct {
	// Operation is the operation that failed (e.g., "seed_defaults")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PlanServiceError.
func (e *PlanServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("plan service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlanServiceError) Unwrap() error {
	return e.Err
}

// NewPlanServiceError creates a new PlanServiceError.
// Service sentinels are returned directly without wrapping.
func NewPlanServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrPlanNotFound) {
		return ErrPlanNotFound
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return ErrStoreUnavailable
	}

	return &PlanServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
