package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-scout/scout-mcp/internal/registry"
)

// fakeRegistry is a scripted registry.Client for handler tests.
type fakeRegistry struct {
	list      *registry.ServerList
	detail    *registry.ServerDetail
	err       error
	gotQuery  string
	gotDetail string
}

func (f *fakeRegistry) ListServers(_ context.Context, opts registry.ListOptions) (*registry.ServerList, error) {
	f.gotQuery = opts.Query
	return f.list, f.err
}

func (f *fakeRegistry) GetServer(_ context.Context, qualifiedName string) (*registry.ServerDetail, error) {
	f.gotDetail = qualifiedName
	return f.detail, f.err
}

func provide(c registry.Client) ClientProvider {
	return func() (registry.Client, bool) { return c, true }
}

func noKey() ClientProvider {
	return func() (registry.Client, bool) { return nil, false }
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// decode unpacks the JSON text payload of a tool result.
func decode(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func summaries(names ...string) []registry.ServerSummary {
	out := make([]registry.ServerSummary, 0, len(names))
	for i, name := range names {
		out = append(out, registry.ServerSummary{
			QualifiedName: name,
			DisplayName:   fmt.Sprintf("Server %d", i),
			Description:   "database integration",
		})
	}
	return out
}

func TestSearchHandleSuccess(t *testing.T) {
	t.Parallel()
	reg := &fakeRegistry{list: &registry.ServerList{
		Servers: summaries("@acme/pg", "@acme/mysql"),
	}}
	tool := NewSearchTool(provide(reg))

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"query": "database",
	}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, statusSuccess, out["status"])
	assert.Equal(t, float64(2), out["total_results"])
	assert.Equal(t, "database", reg.gotQuery)

	results, ok := out["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
}

func TestSearchHandleAppliesFilters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		filters   any
		wantQuery string
	}{
		{
			name:      "filters_as_object",
			filters:   map[string]any{"is_deployed": true, "owner": "acme"},
			wantQuery: "database is:deployed owner:acme",
		},
		{
			name:      "filters_as_json_string",
			filters:   `{"is_verified": true}`,
			wantQuery: "database is:verified",
		},
		{
			name:      "no_filters",
			filters:   nil,
			wantQuery: "database",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := &fakeRegistry{list: &registry.ServerList{}}
			tool := NewSearchTool(provide(reg))

			args := map[string]any{"query": "database"}
			if tt.filters != nil {
				args["filters"] = tt.filters
			}

			res, err := tool.Handle(context.Background(), callRequest(args))
			require.NoError(t, err)

			out := decode(t, res)
			assert.Equal(t, statusSuccess, out["status"])
			assert.Equal(t, tt.wantQuery, reg.gotQuery)
		})
	}
}

func TestSearchHandleInvalidFilters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		filters  any
		wantCode string
	}{
		{name: "broken_json", filters: "{broken", wantCode: codeInvalidFiltersJSON},
		{name: "json_array", filters: "[1, 2]", wantCode: codeInvalidFiltersFormat},
		{name: "wrong_type", filters: 42.0, wantCode: codeInvalidFiltersType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tool := NewSearchTool(noKey())

			res, err := tool.Handle(context.Background(), callRequest(map[string]any{
				"query":   "database",
				"filters": tt.filters,
			}))
			require.NoError(t, err)

			out := decode(t, res)
			assert.Equal(t, statusError, out["status"])
			assert.Equal(t, tt.wantCode, out["error_code"])
		})
	}
}

func TestSearchHandleExcludedQuery(t *testing.T) {
	t.Parallel()
	// The provider must never be consulted for an excluded query.
	tool := NewSearchTool(noKey())

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"query": "web search",
	}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, statusFiltered, out["status"])
	assert.Equal(t, codeRedundantCapability, out["error_code"])
	assert.NotEmpty(t, out["alternatives"])
}

func TestSearchHandleFiltersRedundantResults(t *testing.T) {
	t.Parallel()
	reg := &fakeRegistry{list: &registry.ServerList{
		Servers: []registry.ServerSummary{
			{QualifiedName: "@acme/pg", DisplayName: "Postgres", Description: "PostgreSQL access"},
			{QualifiedName: "@acme/files", DisplayName: "Files", Description: "file operations for agents"},
		},
	}}
	tool := NewSearchTool(provide(reg))

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"query": "postgres",
	}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, float64(1), out["total_results"])
	assert.Equal(t, float64(2), out["raw_results_count"])
	assert.Equal(t, float64(1), out["filtered_count"])
}

func TestSearchHandleMissingAPIKey(t *testing.T) {
	t.Parallel()
	tool := NewSearchTool(noKey())

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"query": "postgres",
	}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, statusError, out["status"])
	assert.Equal(t, codeMissingAPIKey, out["error_code"])
}

func TestSearchHandleMissingQuery(t *testing.T) {
	t.Parallel()
	tool := NewSearchTool(noKey())

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, codeInvalidInput, out["error_code"])
}

func TestSearchHandleRegistryFailure(t *testing.T) {
	t.Parallel()
	reg := &fakeRegistry{err: fmt.Errorf("connection refused")}
	tool := NewSearchTool(provide(reg))

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"query": "postgres",
	}))
	require.NoError(t, err)

	out := decode(t, res)
	assert.Equal(t, codeSearchFailed, out["error_code"])
	assert.Contains(t, out["message"], "connection refused")
}
