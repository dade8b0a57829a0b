package llm

import "errors"

// ErrMissingAPIKey is returned by NewProvider when no credential is configured.
var ErrMissingAPIKey = errors.New("API key is not configured")

// NewProvider creates the chat-completion provider for the given endpoint.
// It returns ErrMissingAPIKey when apiKey is empty so callers can keep
// running without an upstream.
func NewProvider(apiKey, baseURL, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewOpenAIProvider(apiKey, baseURL, model), nil
}
