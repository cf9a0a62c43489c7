package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/installer"
	"github.com/mcp-scout/scout-mcp/internal/registry"
)

// CollectTool gathers everything needed to configure a server before
// installing it: connection schemas, required fields and API key needs.
type CollectTool struct {
	registry ClientProvider
}

// NewCollectTool creates the collect_config tool.
func NewCollectTool(provider ClientProvider) *CollectTool {
	return &CollectTool{registry: provider}
}

// Definition describes the tool to MCP clients.
func (*CollectTool) Definition() mcp.Tool {
	return mcp.NewTool("collect_config",
		mcp.WithDescription(
			"Collect configuration requirements for an MCP server: connection "+
				"types, required config fields and known API key needs."),
		mcp.WithString("qualified_name",
			mcp.Required(),
			mcp.Description("Unique identifier of the server, e.g. @redis/mcp-redis"),
		),
	)
}

// Handle runs one collection.
func (t *CollectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireQualifiedName(req)
	if !ok {
		return invalidQualifiedName()
	}

	client, keyOK := t.registry()
	if !keyOK {
		return missingKeyResult("collect configuration information")
	}

	detail, err := client.GetServer(ctx, name)
	if err != nil {
		return errorResult(codeConfigCollectionFailed,
			fmt.Sprintf("Failed to collect config for %q: %v", name, err))
	}

	info := payload{
		"qualified_name": detail.QualifiedName,
		"display_name":   detail.DisplayName,
		"connections":    connectionPayloads(detail.QualifiedName, detail.Connections),
	}
	if apiReq := installer.DetectAPIRequirement(name); apiReq.RequiresAPIKey {
		info["api_requirements"] = apiReq
	}
	if detail.Security != nil {
		info["security"] = payload{"scan_passed": detail.Security.ScanPassed}
	}

	return result(payload{
		"status":      statusSuccess,
		"config_info": info,
		"setup_guidance": payload{
			"step_1": "Review required configuration fields",
			"step_2": "Set up any required API keys or environment variables",
			"step_3": "Use the install_mcp tool with the config parameter",
			"example": fmt.Sprintf(
				"install_mcp(qualified_name=%q, client=\"claude\", config={\"key\": \"value\"})", name),
		},
	})
}

// connectionPayloads renders a server's connections, expanding the required
// fields from each config schema. WebSocket connections that do not name
// their endpoint get the hosted one derived from the qualified name.
func connectionPayloads(qualifiedName string, connections []registry.Connection) []payload {
	out := make([]payload, 0, len(connections))
	for _, conn := range connections {
		p := payload{
			"type":          conn.Type,
			"config_schema": conn.ConfigSchema,
		}
		switch {
		case conn.URL != nil:
			p["url"] = *conn.URL
		case conn.Type == "ws":
			if hosted, err := registry.ConnectionURL(qualifiedName, map[string]any{}); err == nil {
				p["url"] = hosted
			} else {
				p["url"] = nil
			}
		default:
			p["url"] = nil
		}

		if required, descriptions, ok := requiredFields(conn.ConfigSchema); ok {
			p["required_fields"] = required
			p["field_descriptions"] = descriptions
		}
		out = append(out, p)
	}
	return out
}

// requiredFields extracts the required field names and their descriptions
// from a JSON schema shaped config schema.
func requiredFields(schema map[string]any) ([]string, map[string]payload, bool) {
	if schema == nil {
		return nil, nil, false
	}
	rawRequired, ok := schema["required"].([]any)
	if !ok {
		return nil, nil, false
	}
	properties, _ := schema["properties"].(map[string]any)

	required := make([]string, 0, len(rawRequired))
	descriptions := map[string]payload{}
	for _, item := range rawRequired {
		field, ok := item.(string)
		if !ok {
			continue
		}
		required = append(required, field)

		fieldInfo, ok := properties[field].(map[string]any)
		if !ok {
			continue
		}
		desc := payload{"type": "string", "description": ""}
		if ft, ok := fieldInfo["type"].(string); ok {
			desc["type"] = ft
		}
		if fd, ok := fieldInfo["description"].(string); ok {
			desc["description"] = fd
		}
		descriptions[field] = desc
	}
	return required, descriptions, true
}
