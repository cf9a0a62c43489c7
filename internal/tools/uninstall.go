package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/inventory"
)

// UninstallTool removes a server from the writable global configuration.
type UninstallTool struct {
	planner *inventory.Planner
}

// NewUninstallTool creates the uninstall_mcp tool.
func NewUninstallTool(planner *inventory.Planner) *UninstallTool {
	return &UninstallTool{planner: planner}
}

// Definition describes the tool to MCP clients.
func (*UninstallTool) Definition() mcp.Tool {
	return mcp.NewTool("uninstall_mcp",
		mcp.WithDescription(
			"Remove an MCP server from the global client configuration. Entries "+
				"installed in other configuration layers are reported as not found."),
		mcp.WithString("qualified_name",
			mcp.Required(),
			mcp.Description("Unique identifier of the server to remove"),
		),
	)
}

// Handle runs one removal.
func (t *UninstallTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireQualifiedName(req)
	if !ok {
		return invalidQualifiedName()
	}

	res, err := t.planner.Uninstall(name)
	if err != nil {
		return configErrorResult(err, codeConfigIOError, payload{
			"config_path": t.planner.GlobalPath(),
		})
	}

	return result(payload{
		"status":          statusSuccess,
		"message":         fmt.Sprintf("Successfully removed %q from configuration", res.QualifiedName),
		"qualified_name":  res.QualifiedName,
		"sanitized_name":  res.SanitizedName,
		"removed_entries": res.Removed,
		"config_path":     res.ConfigPath,
	})
}
