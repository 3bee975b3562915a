// Package server exposes record serialization and title composition as
// Model Context Protocol tools.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/wintitle/internal/logger"
	"github.com/mj1618/wintitle/internal/title"
	"github.com/mj1618/wintitle/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server. Handlers hold no shared state, so calls
// run concurrently without locking.
type Server struct {
	mcp *mcpserver.MCPServer
	log *logger.Logger
}

// New creates an MCP server with all wintitle tools registered.
func New(log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{log: log}
	s.mcp = mcpserver.NewMCPServer("wintitle", version.Version)
	s.registerTools()
	return s
}

// Serve starts the server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// serialize
	s.mcp.AddTool(
		mcp.NewTool("serialize",
			mcp.WithDescription(`Serialize a record to compact JSON, e.g. {"Name":"CIAO"}`),
			mcp.WithString("name", mcp.Description("Value of the record's Name field (may be empty)"), mcp.Required()),
		),
		s.handleSerialize,
	)

	// compose_title
	s.mcp.AddTool(
		mcp.NewTool("compose_title",
			mcp.WithDescription("Append a serialized record to a base window title with no separator"),
			mcp.WithString("name", mcp.Description("Value of the record's Name field"), mcp.Required()),
			mcp.WithString("base", mcp.Description("Base title (default: "+title.DefaultBase+")")),
		),
		s.handleComposeTitle,
	)

	// decode
	s.mcp.AddTool(
		mcp.NewTool("decode",
			mcp.WithDescription("Decode serialized record text and return its Name field"),
			mcp.WithString("text", mcp.Description(`Serialized record, e.g. {"Name":"CIAO"}`), mcp.Required()),
		),
		s.handleDecode,
	)
}
