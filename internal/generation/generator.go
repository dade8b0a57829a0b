package generation

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/llm"
	"github.com/ziadkadry99/chunlian/internal/model"
)

// Generator turns user input into couplets and fortune cards by prompting
// a chat-completion provider.
type Generator struct {
	provider llm.Provider
	model    string
}

// New creates a Generator. A nil provider means no credential is configured:
// every call then fails with ErrNotConfigured without touching the network.
func New(provider llm.Provider, model string) *Generator {
	return &Generator{provider: provider, model: model}
}

// Configured reports whether an upstream provider is available.
func (g *Generator) Configured() bool {
	return g.provider != nil
}

// Model returns the model identifier sent upstream.
func (g *Generator) Model() string {
	return g.model
}

// Couplet generates a couplet for the request's theme and style.
func (g *Generator) Couplet(ctx context.Context, req model.CoupletRequest) (*model.CoupletResult, error) {
	content, err := g.complete(ctx, CoupletPrompt(req.Theme, req.Style))
	if err != nil {
		return nil, err
	}
	return ParseCouplet(content)
}

// Fortune draws a fortune card.
func (g *Generator) Fortune(ctx context.Context) (*model.FortuneCard, error) {
	content, err := g.complete(ctx, FortunePrompt())
	if err != nil {
		return nil, err
	}
	return ParseFortune(content)
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.provider == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:    g.model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	logrus.WithFields(logrus.Fields{
		"model":         resp.Model,
		"input_tokens":  resp.InputTokens,
		"output_tokens": resp.OutputTokens,
		"finish_reason": resp.FinishReason,
	}).Debug("completion received")

	return resp.Content, nil
}
