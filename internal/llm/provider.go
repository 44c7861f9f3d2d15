// Package llm provides an optional model-backed incident annotator. It
// refines the incident type and affected count for articles the rule
// classifier already judged relevant; it never widens the relevance gate.
package llm

import (
	"context"
	"time"
)

// Provider defines the interface for LLM annotation backends.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Annotate classifies an already-relevant article text
	Annotate(ctx context.Context, req AnnotateRequest) (*AnnotateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnnotateRequest contains the input for LLM annotation.
type AnnotateRequest struct {
	// Text is the article title plus description/body
	Text string

	// Types is the closed set of incident type labels the model may
	// choose from. Anything outside this list is rejected.
	Types []string
}

// AnnotateResponse contains the model's structured answer.
type AnnotateResponse struct {
	// IncidentType is one of the labels from AnnotateRequest.Types
	IncidentType string `json:"incident_type"`

	// NumAffected is the number of people arrested or detained, 0 when
	// the article does not say
	NumAffected int `json:"num_affected"`
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration
}
