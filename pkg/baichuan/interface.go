package baichuan

import (
	"context"
	"errors"
)

var (
	// ErrAPIKeyMissing is returned without a network call when no key is set.
	ErrAPIKeyMissing = errors.New("baichuan: API key is not configured")

	// ErrUnparseableResponse is returned when a successful response matches
	// none of the known shapes. The wrapping error carries a truncated dump
	// of the body for diagnostics; it is never a user-facing reply.
	ErrUnparseableResponse = errors.New("baichuan: unrecognized response format")
)

// IBaichuan defines the interface for the Baichuan chat-completions client.
// Implementations are safe for concurrent use.
type IBaichuan interface {
	// Complete sends the persona, history and user message and returns the
	// generated reply text.
	Complete(ctx context.Context, message string, history []Message) (string, error)

	// Status probes the API with a short test message.
	Status(ctx context.Context) error

	// Model returns the model being used
	Model() string
}

// New creates a new Baichuan client with the given configuration
func New(cfg Config) IBaichuan {
	cfg.Validate()
	return &baichuanImpl{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  cfg.HTTPClient,
	}
}
