// Package inventory builds the merged view of installed servers across all
// client configuration sources and plans removals against the writable one.
package inventory

import (
	"fmt"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
	"github.com/mcp-scout/scout-mcp/internal/names"
)

// Entry is one installed server in the merged inventory.
type Entry struct {
	Name    string            `json:"name"`
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// Source describes one logical configuration layer that contributed to a
// resolution.
type Source struct {
	Scope clientconfig.Scope `json:"scope"`
	Path  string             `json:"path"`
}

func (s Source) String() string {
	return fmt.Sprintf("%s: %s", s.Scope, s.Path)
}

// Inventory is the merged, de-duplicated set of installed servers. Entries
// are ordered by source precedence (first-seen wins), alphabetically within
// a source.
type Inventory struct {
	Entries []Entry

	// Sources lists every logical source that was successfully consulted,
	// including ones that contributed no entries.
	Sources []Source

	// CheckedPaths lists every candidate document path, consulted or not.
	CheckedPaths []string
}

// SourceLabels renders the consulted sources for diagnostic reporting.
func (inv *Inventory) SourceLabels() []string {
	labels := make([]string, 0, len(inv.Sources))
	for _, s := range inv.Sources {
		labels = append(labels, s.String())
	}
	return labels
}

// Find returns the first entry matching the qualified name under the
// reconciliation rules, in precedence order.
func (inv *Inventory) Find(qualifiedName string) (Entry, bool) {
	for _, e := range inv.Entries {
		if names.Matches(qualifiedName, e.Name, e.Args) {
			return e, true
		}
	}
	return Entry{}, false
}
