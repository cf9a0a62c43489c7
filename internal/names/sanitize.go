// Package names reconciles registry-qualified server names with the
// identifiers a client CLI stores them under.
package names

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Sanitize converts a registry-qualified name into the form accepted by the
// client CLI, which only allows letters, numbers, hyphens, and underscores.
// Scoped package names like "@redis/mcp-redis" become "redis-mcp-redis".
//
// The derivation is pure and idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(qualifiedName string) string {
	s := strings.ReplaceAll(qualifiedName, "@", "")
	s = strings.ReplaceAll(s, "/", "-")
	s = invalidChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
