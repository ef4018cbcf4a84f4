package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps request bodies. Documents and code submissions
// are truncated before prompting, so anything larger is rejected outright.
const MaxRequestBodyBytes = 1 << 20

// Global validator instance for reuse. Field names in errors use the JSON
// name so messages match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Errors returned by DecodeJSON.
var (
	// ErrEmptyBody is returned when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrMalformedBody wraps every other decoding failure.
	ErrMalformedBody = errors.New("malformed request body")
)

// DecodeJSON decodes the request body into v. Bodies over
// MaxRequestBodyBytes and trailing data after the JSON value are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON body", ErrMalformedBody)
	}
	return nil
}

// ValidateRequest validates the struct tags of v, then calls its Validate
// method when it has one.
func ValidateRequest(v any) error {
	if err := validate.Struct(v); err != nil {
		return err
	}

	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return nil
}
