package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/inventory"
)

// ListTool reports the merged inventory of installed servers.
type ListTool struct {
	resolver *inventory.Resolver
}

// NewListTool creates the list_installed tool.
func NewListTool(resolver *inventory.Resolver) *ListTool {
	return &ListTool{resolver: resolver}
}

// Definition describes the tool to MCP clients.
func (*ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_installed",
		mcp.WithDescription(
			"List all MCP servers installed across every client configuration "+
				"source, merged by precedence."),
	)
}

// Handle runs one listing.
func (t *ListTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inv, err := t.resolver.Resolve()
	if err != nil {
		return configErrorResult(err, codeListError, nil)
	}

	return result(payload{
		"status":            statusSuccess,
		"installed_mcps":    inv.Entries,
		"total_count":       len(inv.Entries),
		"sources_consulted": inv.SourceLabels(),
		"checked_paths":     inv.CheckedPaths,
		"message":           fmt.Sprintf("Found %d installed servers", len(inv.Entries)),
	})
}
