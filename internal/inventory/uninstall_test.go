package inventory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
)

func TestUninstallRemovesMatchingEntries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		qualifiedName string
		servers       map[string]any
		wantRemoved   []string
		wantRemaining []string
	}{
		{
			name:          "exact_name",
			qualifiedName: "my-server",
			servers: map[string]any{
				"my-server": server("npx"),
				"other":     server("npx"),
			},
			wantRemoved:   []string{"my-server"},
			wantRemaining: []string{"other"},
		},
		{
			name:          "sanitized_name",
			qualifiedName: "@redis/mcp-redis",
			servers: map[string]any{
				"redis-mcp-redis": server("npx"),
			},
			wantRemoved:   []string{"redis-mcp-redis"},
			wantRemaining: []string{},
		},
		{
			name:          "qualified_name_in_args",
			qualifiedName: "@redis/mcp-redis",
			servers: map[string]any{
				"custom-alias": server("npx", "-y", "@redis/mcp-redis"),
				"redis-cli":    server("npx", "redis-cli"),
			},
			wantRemoved:   []string{"custom-alias"},
			wantRemaining: []string{"redis-cli"},
		},
		{
			name:          "multiple_matches_removed_together",
			qualifiedName: "@redis/mcp-redis",
			servers: map[string]any{
				"redis-mcp-redis": server("npx"),
				"alias":           server("npx", "@redis/mcp-redis"),
				"unrelated":       server("npx"),
			},
			wantRemoved:   []string{"alias", "redis-mcp-redis"},
			wantRemaining: []string{"unrelated"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			home := t.TempDir()
			globalPath := clientconfig.GlobalPath(home)
			writeDoc(t, globalPath, map[string]any{"mcpServers": tt.servers})

			planner := NewPlanner(clientconfig.NewFileStore(), home)
			res, err := planner.Uninstall(tt.qualifiedName)
			require.NoError(t, err)

			removed := make([]string, 0, len(res.Removed))
			for _, r := range res.Removed {
				removed = append(removed, r.Name)
			}
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, globalPath, res.ConfigPath)

			// The document on disk reflects the removals.
			data, err := os.ReadFile(globalPath)
			require.NoError(t, err)
			var round map[string]map[string]any
			require.NoError(t, json.Unmarshal(data, &round))

			remaining := make([]string, 0, len(round["mcpServers"]))
			for name := range round["mcpServers"] {
				remaining = append(remaining, name)
			}
			assert.ElementsMatch(t, tt.wantRemaining, remaining)
		})
	}
}

func TestUninstallBlankName(t *testing.T) {
	t.Parallel()
	// The global document deliberately does not exist; validation must
	// reject the input before any I/O happens.
	planner := NewPlanner(clientconfig.NewFileStore(), t.TempDir())

	_, err := planner.Uninstall("   ")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "qualified_name", invalid.Field)
}

func TestUninstallMissingDocument(t *testing.T) {
	t.Parallel()
	planner := NewPlanner(clientconfig.NewFileStore(), t.TempDir())

	_, err := planner.Uninstall("@redis/mcp-redis")
	var notFound *clientconfig.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUninstallMalformedDocument(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	globalPath := clientconfig.GlobalPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte("{broken"), 0o600))

	planner := NewPlanner(clientconfig.NewFileStore(), home)
	_, err := planner.Uninstall("@redis/mcp-redis")

	var ioErr *clientconfig.IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestUninstallEntryNotFound(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	globalPath := clientconfig.GlobalPath(home)
	writeDoc(t, globalPath, map[string]any{
		"mcpServers": map[string]any{"something-else": server("npx")},
	})

	planner := NewPlanner(clientconfig.NewFileStore(), home)
	_, err := planner.Uninstall("@redis/mcp-redis")

	var notFound *EntryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "@redis/mcp-redis", notFound.QualifiedName)
	assert.Equal(t, "redis-mcp-redis", notFound.SanitizedName)

	// A failed removal must not rewrite the document.
	data, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	var round map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Contains(t, round["mcpServers"], "something-else")
}

func TestUninstallIgnoresOtherSources(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	workDir := filepath.Join(home, "project")
	require.NoError(t, os.MkdirAll(workDir, 0o755))
	paths := clientconfig.PathsFor(home, workDir)

	// Installed only in the project-local document. Resolution sees it,
	// but removal targets the global document alone.
	writeDoc(t, paths.Project, map[string]any{
		"mcpServers": map[string]any{"project-only": server("npx")},
	})
	writeDoc(t, paths.Global, map[string]any{"mcpServers": map[string]any{}})

	store := clientconfig.NewFileStore()
	resolver := NewResolver(store, home, workDir)
	inv, err := resolver.Resolve()
	require.NoError(t, err)
	_, found := inv.Find("project-only")
	require.True(t, found)

	planner := NewPlanner(store, home)
	_, err = planner.Uninstall("project-only")
	var notFound *EntryNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUninstallPreservesUnknownKeys(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	globalPath := clientconfig.GlobalPath(home)
	writeDoc(t, globalPath, map[string]any{
		"userSettings": map[string]any{"theme": "dark"},
		"mcpServers":   map[string]any{"target": server("npx")},
	})

	planner := NewPlanner(clientconfig.NewFileStore(), home)
	_, err := planner.Uninstall("target")
	require.NoError(t, err)

	data, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Contains(t, round, "userSettings")
}
