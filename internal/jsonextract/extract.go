// Package jsonextract recovers a JSON object from free-form model output.
//
// Models asked for JSON frequently wrap it in markdown code fences or add a
// sentence of prose around it. The extractor strips the fences, takes the
// span from the first '{' to the last '}' and parses that. It does not
// validate the parsed object against any schema.
package jsonextract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSON is returned when the text contains no '{' ... '}' span.
	ErrNoJSON = errors.New("no JSON found in model output")

	// ErrInvalidJSON is returned when the extracted span does not parse.
	ErrInvalidJSON = errors.New("invalid JSON in model output")
)

// fences are removed wherever they appear, not only at the edges.
var fences = []string{"```json", "```"}

// Span returns the candidate JSON text: fences stripped, whitespace trimmed,
// from the first '{' to the last '}' inclusive.
func Span(text string) (string, error) {
	cleaned := text
	for _, fence := range fences {
		cleaned = strings.ReplaceAll(cleaned, fence, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}

	return cleaned[start : end+1], nil
}

// Into extracts the JSON object from text and decodes it into v.
func Into(text string, v any) error {
	span, err := Span(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return nil
}

// Object extracts the JSON object from text as an untyped map.
func Object(text string) (map[string]any, error) {
	var out map[string]any
	if err := Into(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}
