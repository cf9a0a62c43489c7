// Package clientconfig reads and writes the client's JSON configuration
// documents at their fixed, well-known filesystem locations.
package clientconfig

import "path/filepath"

const (
	// ProjectFileName is the per-directory configuration file name.
	ProjectFileName = ".claude.json"

	// GlobalFileName is the global configuration file name under the
	// user's config directory.
	GlobalFileName = "claude_config.json"
)

// Scope identifies the logical configuration layer an entry came from.
type Scope string

// Scopes, from highest to lowest merge precedence.
const (
	ScopeProject            Scope = "local_project"
	ScopeUserHome           Scope = "local_home"
	ScopeHomeProjectCurrent Scope = "project_current"
	ScopeHomeProjectOther   Scope = "project_other"
	ScopeGlobal             Scope = "global"
)

// Paths holds the fixed candidate locations of the configuration documents.
type Paths struct {
	// Project is the project-local document in the working directory.
	Project string

	// UserHome is the user-level document in the home directory. It may
	// carry a root-level server mapping and per-project sections.
	UserHome string

	// Global is the single writable document targeted by uninstall.
	Global string
}

// PathsFor returns the candidate paths for the given home and working
// directories. Paths are fixed relative to the injected directories so
// resolution is deterministic and testable.
func PathsFor(home, workDir string) Paths {
	return Paths{
		Project:  filepath.Join(workDir, ProjectFileName),
		UserHome: filepath.Join(home, ProjectFileName),
		Global:   GlobalPath(home),
	}
}

// GlobalPath returns the location of the global configuration document.
func GlobalPath(home string) string {
	return filepath.Join(home, ".config", "claude", GlobalFileName)
}

// Checked lists every candidate path in precedence order, for diagnostics.
func (p Paths) Checked() []string {
	return []string{p.Project, p.UserHome, p.Global}
}
