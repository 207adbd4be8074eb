package mcp

import (
	"context"
	"encoding/json"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/sentry/internal/common"
)

// versionInfo holds the adapter's version fields.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
	Full    string `json:"full"`
}

// VersionTool returns the mcp.Tool definition for the get_version tool.
func VersionTool() mcpgo.Tool {
	return mcpgo.NewTool("get_version",
		mcpgo.WithDescription("Get the Sentry MCP adapter version. Use this to verify connectivity."),
	)
}

// VersionToolHandler returns a handler reporting the adapter's build info.
func VersionToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		info := versionInfo{
			Version: common.GetVersion(),
			Build:   common.GetBuild(),
			Commit:  common.GetGitCommit(),
			Full:    common.GetFullVersion(),
		}
		out, err := json.Marshal(info)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return textResult(string(out)), nil
	}
}
