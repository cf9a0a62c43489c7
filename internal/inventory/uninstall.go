package inventory

import (
	"strings"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
	"github.com/mcp-scout/scout-mcp/internal/names"
)

// Removal describes one entry deleted from the writable configuration,
// reported for auditability.
type Removal struct {
	Name    string   `json:"name"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// RemovalResult reports a completed uninstall.
type RemovalResult struct {
	QualifiedName string
	SanitizedName string
	Removed       []Removal
	ConfigPath    string
}

// Planner computes and applies removals. Unlike resolution, which reads
// every source, removal targets exactly one authoritative writable document:
// the global configuration file. Entries that live only in other sources are
// reported as not found, never silently ignored.
//
// The read-modify-write is not atomic: no cross-process lock is taken and a
// concurrent writer can lose the race. Last writer wins.
type Planner struct {
	store      clientconfig.Store
	globalPath string
}

// NewPlanner creates a planner over the global document for the given home
// directory.
func NewPlanner(store clientconfig.Store, home string) *Planner {
	return &Planner{
		store:      store,
		globalPath: clientconfig.GlobalPath(home),
	}
}

// GlobalPath returns the writable document this planner mutates.
func (p *Planner) GlobalPath() string {
	return p.globalPath
}

// Uninstall removes every entry in the writable document that matches the
// qualified name under the reconciliation rules, persists the updated
// document, and reports what was removed.
//
// A blank qualified name fails with *InvalidInputError before any I/O. A
// missing document fails with *clientconfig.NotFoundError, a malformed or
// unwritable one with *clientconfig.IOError, and an empty removal set with
// *EntryNotFoundError.
func (p *Planner) Uninstall(qualifiedName string) (*RemovalResult, error) {
	trimmed := strings.TrimSpace(qualifiedName)
	if trimmed == "" {
		return nil, &InvalidInputError{Field: "qualified_name"}
	}
	sanitized := names.Sanitize(trimmed)

	doc, err := p.store.Load(p.globalPath)
	if err != nil {
		return nil, err
	}

	var removed []Removal
	for _, name := range sortedEntryNames(doc.MCPServers) {
		entry := doc.MCPServers[name]
		if !names.Matches(trimmed, name, entry.Args) {
			continue
		}
		removed = append(removed, Removal{
			Name:    name,
			Command: entry.Command,
			Args:    append([]string{}, entry.Args...),
		})
	}

	if len(removed) == 0 {
		return nil, &EntryNotFoundError{QualifiedName: trimmed, SanitizedName: sanitized}
	}

	for _, r := range removed {
		delete(doc.MCPServers, r.Name)
	}
	if err := p.store.Save(p.globalPath, doc); err != nil {
		return nil, err
	}

	return &RemovalResult{
		QualifiedName: trimmed,
		SanitizedName: sanitized,
		Removed:       removed,
		ConfigPath:    p.globalPath,
	}, nil
}
