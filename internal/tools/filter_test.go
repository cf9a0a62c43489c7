package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldExcludeQuery(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "web_search_excluded", query: "web search tool", want: true},
		{name: "file_operations_excluded", query: "File Operations helper", want: true},
		{name: "git_operations_excluded", query: "git operations", want: true},
		{name: "json_processing_excluded", query: "fast json processing", want: true},
		{name: "database_allowed", query: "postgresql client", want: false},
		{name: "vector_store_allowed", query: "qdrant vector store", want: false},
		{name: "empty_query_allowed", query: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, shouldExcludeQuery(tt.query))
		})
	}
}

func TestFilterRedundant(t *testing.T) {
	t.Parallel()
	results := []searchResult{
		{QualifiedName: "@acme/pg", DisplayName: "Postgres MCP", Description: "PostgreSQL database access"},
		{QualifiedName: "@acme/files", DisplayName: "Files", Description: "General file operations for agents"},
		{QualifiedName: "@acme/search", DisplayName: "Web Search Pro", Description: "Search engine"},
	}

	kept := filterRedundant(results)

	assert.Len(t, kept, 1)
	assert.Equal(t, "@acme/pg", kept[0].QualifiedName)
}

func TestSuggestAlternatives(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		query     string
		wantEmpty bool
		wantFirst string
	}{
		{name: "web_query", query: "http request helper", wantFirst: "github api client"},
		{name: "file_query", query: "file reading", wantFirst: "pdf manipulation"},
		{name: "development_query", query: "development utility", wantFirst: "postgresql client"},
		{name: "unrelated_query", query: "quantum chemistry", wantEmpty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := suggestAlternatives(tt.query)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			assert.LessOrEqual(t, len(got), 3)
			assert.Equal(t, tt.wantFirst, got[0])
		})
	}
}
