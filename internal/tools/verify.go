package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/inventory"
	"github.com/mcp-scout/scout-mcp/internal/names"
)

// VerifyTool checks the merged inventory for a server, reconciling the
// qualified name against sanitized entry names and argument tokens.
type VerifyTool struct {
	resolver *inventory.Resolver
}

// NewVerifyTool creates the verify_installation tool.
func NewVerifyTool(resolver *inventory.Resolver) *VerifyTool {
	return &VerifyTool{resolver: resolver}
}

// Definition describes the tool to MCP clients.
func (*VerifyTool) Definition() mcp.Tool {
	return mcp.NewTool("verify_installation",
		mcp.WithDescription(
			"Verify that an MCP server is installed in any client configuration "+
				"source, checking both the qualified name and its sanitized form."),
		mcp.WithString("qualified_name",
			mcp.Required(),
			mcp.Description("Unique identifier of the server to verify, e.g. @redis/mcp-redis"),
		),
	)
}

// Handle runs one verification.
func (t *VerifyTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireQualifiedName(req)
	if !ok {
		return invalidQualifiedName()
	}
	sanitized := names.Sanitize(name)

	inv, err := t.resolver.Resolve()
	if err != nil {
		return configErrorResult(err, codeConfigCheckFailed, payload{
			"verified":       false,
			"qualified_name": name,
		})
	}

	p := payload{
		"status":            statusSuccess,
		"qualified_name":    name,
		"sanitized_name":    sanitized,
		"sources_consulted": inv.SourceLabels(),
		"checked_paths":     inv.CheckedPaths,
	}

	entry, found := inv.Find(name)
	p["verified"] = found
	if found {
		p["found_name"] = entry.Name
		p["message"] = fmt.Sprintf("Server %q is installed as %q", name, entry.Name)
	} else {
		p["found_name"] = nil
		p["message"] = fmt.Sprintf("Server %q is not installed. Expected sanitized name: %q",
			name, sanitized)
	}
	return result(p)
}
