package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// InfoTool retrieves full registry detail for one server.
type InfoTool struct {
	registry ClientProvider
}

// NewInfoTool creates the get_mcp_info tool.
func NewInfoTool(provider ClientProvider) *InfoTool {
	return &InfoTool{registry: provider}
}

// Definition describes the tool to MCP clients.
func (*InfoTool) Definition() mcp.Tool {
	return mcp.NewTool("get_mcp_info",
		mcp.WithDescription(
			"Retrieve detailed information about a specific MCP server from the "+
				"Smithery Registry, including connections, security scan status and tools."),
		mcp.WithString("qualified_name",
			mcp.Required(),
			mcp.Description("Unique identifier of the server, e.g. @redis/mcp-redis"),
		),
	)
}

// Handle runs one lookup.
func (t *InfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireQualifiedName(req)
	if !ok {
		return invalidQualifiedName()
	}

	client, keyOK := t.registry()
	if !keyOK {
		return missingKeyResult("retrieve server information")
	}

	detail, err := client.GetServer(ctx, name)
	if err != nil {
		return errorResult(codeInfoFailed,
			fmt.Sprintf("Failed to get server info for %q: %v", name, err))
	}

	info := payload{
		"qualified_name": detail.QualifiedName,
		"display_name":   detail.DisplayName,
		"connections":    connectionPayloads(detail.QualifiedName, detail.Connections),
	}
	if detail.Description != nil {
		info["description"] = *detail.Description
	}
	if detail.IconURL != nil {
		info["icon_url"] = *detail.IconURL
	}
	if detail.Remote != nil {
		info["remote"] = *detail.Remote
	}
	if detail.DeploymentURL != nil {
		info["deployment_url"] = *detail.DeploymentURL
	}
	if detail.Security != nil {
		info["security"] = payload{"scan_passed": detail.Security.ScanPassed}
	}
	if len(detail.Tools) > 0 {
		toolList := make([]payload, 0, len(detail.Tools))
		for _, tool := range detail.Tools {
			toolList = append(toolList, payload{
				"name":         tool.Name,
				"description":  tool.Description,
				"input_schema": tool.InputSchema,
			})
		}
		info["tools"] = toolList
	}

	return result(payload{
		"status":   statusSuccess,
		"mcp_info": info,
		"install_instructions": payload{
			"smithery_cli": fmt.Sprintf(
				"npx -y @smithery/cli@latest install %s --client claude", detail.QualifiedName),
			"note": "Use the install_mcp tool for automated installation with client and config support",
		},
	})
}

func requireQualifiedName(req mcp.CallToolRequest) (string, bool) {
	name, err := req.RequireString("qualified_name")
	if err != nil {
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

func invalidQualifiedName() (*mcp.CallToolResult, error) {
	return errorResult(codeInvalidInput, "qualified_name parameter is required and cannot be empty")
}
