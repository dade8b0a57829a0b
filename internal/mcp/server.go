package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/chunlian/internal/generation"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes couplet and fortune generation.
type Server struct {
	generator *generation.Generator
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server backed by gen.
func NewServer(gen *generation.Generator) *Server {
	s := &Server{generator: gen}

	s.mcp = server.NewMCPServer(
		"chunlian",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(generateCoupletTool, s.handleGenerateCouplet)
	s.mcp.AddTool(drawFortuneTool, s.handleDrawFortune)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
