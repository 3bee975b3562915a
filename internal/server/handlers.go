package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/wintitle/internal/codec"
	"github.com/mj1618/wintitle/internal/model"
	"github.com/mj1618/wintitle/internal/output"
	"github.com/mj1618/wintitle/internal/title"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) handleSerialize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, ok := requiredString(params, "name")
	if !ok {
		return mcp.NewToolResultError("name is required and must be a string"), nil
	}

	text, err := codec.Serialize(model.NewRecord(name))
	if err != nil {
		s.log.Warn("serialize failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.SerializeResult{Name: name, Text: text})), nil
}

func (s *Server) handleComposeTitle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name, ok := requiredString(params, "name")
	if !ok {
		return mcp.NewToolResultError("name is required and must be a string"), nil
	}
	base := StringParam(params, "base", title.DefaultBase)

	w, err := title.ComposeWindow(base, model.NewRecord(name))
	if err != nil {
		s.log.Warn("compose title failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.TitleResult{
		OK:     true,
		Base:   w.Base,
		Record: w.Record,
		Title:  w.Title,
	})), nil
}

func (s *Server) handleDecode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text, ok := requiredString(params, "text")
	if !ok {
		return mcp.NewToolResultError("text is required and must be a string"), nil
	}

	rec, err := codec.Decode(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.DecodeResult{OK: true, Name: rec.Name()})), nil
}
