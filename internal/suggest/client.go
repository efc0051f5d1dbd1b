// Package suggest provides the category suggestion service: a single-shot,
// best-effort advisory call mapping a transaction description to a category
// label and a confidence score.
package suggest

import (
	"context"
)

// Client defines the interface for suggestion providers.
type Client interface {
	// Suggest sends the prompt to the provider and returns its raw
	// completion text.
	Suggest(ctx context.Context, prompt string) (string, error)
}

// Response is the schema-validated provider output.
type Response struct {
	SuggestedCategory string  `json:"suggestedCategory"`
	ConfidenceScore   float64 `json:"confidenceScore"`
}
