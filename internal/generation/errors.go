package generation

import "errors"

var (
	// ErrNotConfigured means no upstream credential is configured.
	ErrNotConfigured = errors.New("upstream API key not configured")
	// ErrUpstream wraps any failure talking to the chat-completion API.
	ErrUpstream = errors.New("upstream completion failed")
	// ErrMalformedResponse means the model reply was not the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
