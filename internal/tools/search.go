package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/registry"
)

const defaultSearchLimit = 10

const filtersExample = `{"is_deployed": true, "is_verified": true}`

// searchResult is one entry in a search response.
type searchResult struct {
	QualifiedName string `json:"qualified_name"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	Homepage      string `json:"homepage"`
	UseCount      int    `json:"use_count"`
	IsDeployed    *bool  `json:"is_deployed,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// SearchTool performs a registry search with redundancy filtering on both
// the query and the results.
type SearchTool struct {
	registry ClientProvider
}

// NewSearchTool creates the search_registry tool.
func NewSearchTool(provider ClientProvider) *SearchTool {
	return &SearchTool{registry: provider}
}

// Definition describes the tool to MCP clients.
func (*SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_registry",
		mcp.WithDescription(
			"Search the Smithery Registry for MCP servers matching a query, "+
				"filtering out results that duplicate the client's native capabilities."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term describing the desired server functionality"),
		),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(defaultSearchLimit),
			mcp.Description("Maximum number of results to return"),
		),
		mcp.WithString("filters",
			mcp.Description("Optional registry filters as a JSON object, e.g. "+filtersExample+
				". Supported keys: is_deployed, is_verified, owner."),
		),
	)
}

// Handle runs one search.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return errorResult(codeInvalidInput, "query parameter is required")
	}
	limit := req.GetInt("limit", defaultSearchLimit)
	if limit < 1 {
		limit = defaultSearchLimit
	}

	filters, code, message := parseFilters(req.GetArguments()["filters"])
	if code != "" {
		return errorResultWith(code, message, payload{"example": filtersExample})
	}

	if shouldExcludeQuery(query) {
		return result(payload{
			"status":     statusFiltered,
			"error_code": codeRedundantCapability,
			"message":    fmt.Sprintf("Query %q targets capabilities the client already has natively", query),
			"native_capabilities": "The client already has web search, web fetch, " +
				"file read/write/edit, glob, and shell tools",
			"alternatives": suggestAlternatives(query),
			"recommendation": "Try searching for database integrations, external service APIs, " +
				"or specialized processing tools instead",
		})
	}

	client, ok := t.registry()
	if !ok {
		return missingKeyResult("use the registry search")
	}

	searchQuery := buildSearchQuery(query, filters)
	list, err := client.ListServers(ctx, registry.ListOptions{
		Query: searchQuery,
		Page:  1,
		// Fetch extra so post-search filtering still fills the page.
		PageSize: limit * 2,
	})
	if err != nil {
		return errorResult(codeSearchFailed, fmt.Sprintf("Search failed: %v", err))
	}

	raw := summarize(list.Servers)
	kept := filterRedundant(raw)
	final := kept
	if len(final) > limit {
		final = final[:limit]
	}

	p := payload{
		"status":            statusSuccess,
		"query":             query,
		"search_query_sent": searchQuery,
		"total_results":     len(final),
		"results":           final,
		"raw_results_count": len(raw),
		"filtered_count":    len(raw) - len(kept),
		"filtering_note":    "Results filtered to exclude capabilities the client already has natively",
	}
	if len(final) == 0 {
		p["no_results_reason"] = "No servers found matching the query in the registry"
		p["suggestions"] = []string{
			"Try broader search terms (e.g. 'redis' instead of 'upstash redis')",
			"Search for general categories (e.g. 'database', 'vector', 'monitoring')",
			"Check whether the specific tool exists in the registry at all",
		}
	}
	return result(p)
}

// parseFilters accepts the filters argument as either a JSON object or a
// JSON object string. A non-empty code signals a caller error.
func parseFilters(raw any) (map[string]any, string, string) {
	switch v := raw.(type) {
	case nil:
		return nil, "", ""
	case map[string]any:
		return v, "", ""
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, "", ""
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return nil, codeInvalidFiltersJSON,
				fmt.Sprintf("Invalid JSON in filters parameter: %v", err)
		}
		obj, ok := parsed.(map[string]any)
		if !ok {
			return nil, codeInvalidFiltersFormat,
				"Filters must be a JSON object, not an array or primitive value"
		}
		return obj, "", ""
	default:
		return nil, codeInvalidFiltersType,
			fmt.Sprintf("Filters must be an object or JSON string, got %T", raw)
	}
}

// buildSearchQuery appends registry filter directives to the free-text query.
func buildSearchQuery(query string, filters map[string]any) string {
	parts := []string{}
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		parts = append(parts, trimmed)
	}
	if truthy(filters["is_deployed"]) {
		parts = append(parts, "is:deployed")
	}
	if truthy(filters["is_verified"]) {
		parts = append(parts, "is:verified")
	}
	if owner, ok := filters["owner"].(string); ok && owner != "" {
		parts = append(parts, "owner:"+owner)
	}
	return strings.Join(parts, " ")
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func summarize(servers []registry.ServerSummary) []searchResult {
	out := make([]searchResult, 0, len(servers))
	for _, s := range servers {
		out = append(out, searchResult{
			QualifiedName: s.QualifiedName,
			DisplayName:   s.DisplayName,
			Description:   s.Description,
			Homepage:      s.Homepage,
			UseCount:      s.UseCount,
			IsDeployed:    s.IsDeployed,
			CreatedAt:     s.CreatedAt,
		})
	}
	return out
}
