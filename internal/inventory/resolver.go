package inventory

import (
	"log/slog"
	"sort"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
)

// Resolver merges the candidate configuration documents into one inventory.
//
// Precedence, highest first: project-local document, user-home root-level
// entries, user-home current-project section, user-home other-project
// sections (ascending project path, to keep resolution deterministic), then
// the global document. The first source to declare a name wins; entries are
// never merged field-by-field.
type Resolver struct {
	store   clientconfig.Store
	paths   clientconfig.Paths
	workDir string
}

// NewResolver creates a resolver over the fixed candidate paths derived from
// the given home and working directories.
func NewResolver(store clientconfig.Store, home, workDir string) *Resolver {
	return &Resolver{
		store:   store,
		paths:   clientconfig.PathsFor(home, workDir),
		workDir: workDir,
	}
}

// Paths returns the candidate document paths this resolver consults.
func (r *Resolver) Paths() clientconfig.Paths {
	return r.paths
}

// Resolve reads every candidate source fresh and returns the merged
// inventory. Sources that are missing, unreadable, or malformed are skipped;
// a source that parses but declares no servers still counts as consulted.
// If no document is readable at all, it fails with a
// *clientconfig.NotFoundError carrying every checked path.
//
// Resolve is read-only and deterministic for a given on-disk state.
func (r *Resolver) Resolve() (*Inventory, error) {
	inv := &Inventory{CheckedPaths: r.paths.Checked()}
	seen := map[string]bool{}
	readable := 0

	if doc := r.load(r.paths.Project); doc != nil {
		readable++
		inv.consult(clientconfig.ScopeProject, r.paths.Project)
		inv.merge(seen, doc.MCPServers)
	}

	if doc := r.load(r.paths.UserHome); doc != nil {
		readable++
		inv.consult(clientconfig.ScopeUserHome, r.paths.UserHome)
		inv.merge(seen, doc.MCPServers)

		if project, ok := doc.Projects[r.workDir]; ok {
			inv.consult(clientconfig.ScopeHomeProjectCurrent, r.workDir)
			inv.merge(seen, project.MCPServers)
		}
		for _, path := range sortedKeys(doc.Projects) {
			if path == r.workDir {
				continue
			}
			inv.consult(clientconfig.ScopeHomeProjectOther, path)
			inv.merge(seen, doc.Projects[path].MCPServers)
		}
	}

	if doc := r.load(r.paths.Global); doc != nil {
		readable++
		inv.consult(clientconfig.ScopeGlobal, r.paths.Global)
		inv.merge(seen, doc.MCPServers)
	}

	if readable == 0 {
		return nil, &clientconfig.NotFoundError{CheckedPaths: inv.CheckedPaths}
	}
	return inv, nil
}

// load returns the parsed document or nil when the source must be skipped.
func (r *Resolver) load(path string) *clientconfig.Document {
	doc, err := r.store.Load(path)
	if err != nil {
		slog.Debug("Skipping configuration source", "path", path, "error", err)
		return nil
	}
	return doc
}

func (inv *Inventory) consult(scope clientconfig.Scope, path string) {
	inv.Sources = append(inv.Sources, Source{Scope: scope, Path: path})
}

// merge inserts every not-yet-seen entry from one source. Names within a
// source are visited alphabetically so output order is stable.
func (inv *Inventory) merge(seen map[string]bool, servers map[string]clientconfig.ServerEntry) {
	for _, name := range sortedEntryNames(servers) {
		if seen[name] {
			continue
		}
		seen[name] = true
		inv.Entries = append(inv.Entries, newEntry(name, servers[name]))
	}
}

// newEntry copies a stored declaration into the merged view, normalizing
// absent args and env to empty values.
func newEntry(name string, e clientconfig.ServerEntry) Entry {
	entry := Entry{
		Name:    name,
		Command: e.Command,
		Args:    []string{},
		Env:     map[string]string{},
	}
	entry.Args = append(entry.Args, e.Args...)
	for k, v := range e.Env {
		entry.Env[k] = v
	}
	return entry
}

func sortedEntryNames(servers map[string]clientconfig.ServerEntry) []string {
	entryNames := make([]string, 0, len(servers))
	for name := range servers {
		entryNames = append(entryNames, name)
	}
	sort.Strings(entryNames)
	return entryNames
}

func sortedKeys(projects map[string]clientconfig.Project) []string {
	keys := make([]string, 0, len(projects))
	for key := range projects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
