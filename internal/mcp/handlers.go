package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/gateway"
	"github.com/ziadkadry99/chunlian/internal/generation"
	"github.com/ziadkadry99/chunlian/internal/model"
)

func (s *Server) handleGenerateCouplet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme, err := request.RequireString("theme")
	if err != nil || theme == "" {
		return mcp.NewToolResultError("missing required parameter: theme"), nil
	}

	style := model.Style(request.GetString("style", string(model.StyleTraditional)))

	result, err := s.generator.Couplet(ctx, model.CoupletRequest{Theme: theme, Style: style})
	if err != nil {
		return failure(err, gateway.MsgCoupletFailed), nil
	}
	return jsonResult(result)
}

func (s *Server) handleDrawFortune(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	card, err := s.generator.Fortune(ctx)
	if err != nil {
		return failure(err, gateway.MsgFortuneFailed), nil
	}
	return jsonResult(card)
}

func failure(err error, generic string) *mcp.CallToolResult {
	logrus.WithError(err).Error(generic)
	if errors.Is(err, generation.ErrNotConfigured) {
		return mcp.NewToolResultError(gateway.MsgNotConfigured)
	}
	return mcp.NewToolResultError(generic)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
