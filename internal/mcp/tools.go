package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// BuildMCPTool converts a ToolDef into an mcp.Tool with the matching schema.
func BuildMCPTool(def *ToolDef) mcpgo.Tool {
	opts := []mcpgo.ToolOption{mcpgo.WithDescription(def.Description)}
	for _, p := range def.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcpgo.NewTool(def.Name, opts...)
}

// buildParamOption maps a Param to the appropriate mcp-go tool option.
func buildParamOption(p Param) mcpgo.ToolOption {
	var opts []mcpgo.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcpgo.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcpgo.Required())
	}

	switch p.Type {
	case "number":
		return mcpgo.WithNumber(p.Name, opts...)
	case "boolean":
		return mcpgo.WithBoolean(p.Name, opts...)
	case "array":
		opts = append([]mcpgo.PropertyOption{mcpgo.WithStringItems()}, opts...)
		return mcpgo.WithArray(p.Name, opts...)
	case "object":
		return mcpgo.WithObject(p.Name, opts...)
	default:
		return mcpgo.WithString(p.Name, opts...)
	}
}

// ToolHandler creates the generic handler routing an MCP tool call through
// the dispatcher. Every invocation error comes back as an IsError tool
// result, never a protocol fault.
func ToolHandler(d *Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		args := r.GetArguments()
		if args == nil {
			args = map[string]interface{}{}
		}

		result, err := d.Invoke(ctx, name, args)
		if err != nil {
			return errorResult(invocationErrorText(err)), nil
		}

		if len(result.Body) == 0 {
			return textResult("(no content)"), nil
		}
		// Binary bodies (raw file downloads) cannot pass through a JSON
		// text frame as-is: invalid UTF-8 would be replaced with U+FFFD.
		// Base64 keeps the bytes intact.
		if !utf8.Valid(result.Body) {
			return textResult(base64.StdEncoding.EncodeToString(result.Body)), nil
		}
		return textResult(string(result.Body)), nil
	}
}

// invocationErrorText renders a dispatcher error for the calling host.
// The taxonomy stays visible so callers can tell a remote rejection from an
// unreachable remote.
func invocationErrorText(err error) string {
	switch e := err.(type) {
	case *RemoteError:
		return fmt.Sprintf("Sentry API error (status %d): %s", e.Status, string(e.Body))
	case *TransportError:
		return fmt.Sprintf("Could not reach Sentry: %v", e.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// RegisterTools registers every catalog tool on the MCP server, wired to the
// dispatcher, plus the get_version tool. Returns the number of tools
// registered.
func RegisterTools(s *server.MCPServer, d *Dispatcher) int {
	defs := d.Registry().Defs()
	for _, def := range defs {
		s.AddTool(BuildMCPTool(def), ToolHandler(d, def.Name))
	}
	s.AddTool(VersionTool(), VersionToolHandler())
	return len(defs) + 1
}

func textResult(text string) *mcpgo.CallToolResult {
	return &mcpgo.CallToolResult{
		Content: []mcpgo.Content{
			mcpgo.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcpgo.CallToolResult {
	return &mcpgo.CallToolResult{
		Content: []mcpgo.Content{
			mcpgo.NewTextContent(message),
		},
		IsError: true,
	}
}
