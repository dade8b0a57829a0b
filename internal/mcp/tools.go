package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateCoupletTool defines the generate_couplet MCP tool.
var generateCoupletTool = mcp.NewTool("generate_couplet",
	mcp.WithDescription("Compose a Chinese Spring Festival couplet (春联) with upper line, lower line, horizontal scroll and an explanation."),
	mcp.WithString("theme",
		mcp.Required(),
		mcp.Description("Theme or wish the couplet should express, e.g. 事业有成"),
	),
	mcp.WithString("style",
		mcp.Description("Tone of the couplet (default traditional)"),
		mcp.Enum("traditional", "modern", "humorous"),
	),
)

// drawFortuneTool defines the draw_fortune MCP tool.
var drawFortuneTool = mcp.NewTool("draw_fortune",
	mcp.WithDescription("Draw a New Year fortune card for the Year of the Horse, with verse, blessing and trigrams."),
)
