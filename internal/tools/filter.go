package tools

import "strings"

// Exclusion terms covering capabilities the host client already has
// natively. Queries and results that land on these terms are filtered so
// recommendations stay useful.
var (
	webHTTPExclusions = []string{
		"web search", "http client", "api testing", "web scraping basic",
		"url fetch", "web request", "http request", "api client basic",
		"fetch web content", "search the web", "make http requests",
		"web api calls", "download web pages", "browse websites",
		"http get post", "rest api client", "web content retrieval",
	}

	fileSystemExclusions = []string{
		"file system", "file operations", "file management", "directory listing",
		"file reading", "file writing", "text editing", "file search",
		"read files", "write files", "edit files", "list directories",
		"find files", "file manipulation", "text file processing",
		"file glob patterns", "directory traversal", "file tree",
	}

	developmentExclusions = []string{
		"code analysis", "syntax highlighting", "basic testing", "git operations",
		"terminal tools", "shell commands", "documentation access",
		"analyze code", "read documentation", "run commands", "execute scripts",
		"git commands", "terminal access", "shell scripting", "code review basic",
	}

	textDataExclusions = []string{
		"json processing", "csv basic", "text manipulation", "string operations",
		"markdown processing", "yaml parsing", "xml parsing basic",
		"parse json", "read csv", "process text", "manipulate strings",
		"convert markdown", "yaml files", "xml documents", "text formatting",
	}
)

func allExclusions() []string {
	out := make([]string, 0,
		len(webHTTPExclusions)+len(fileSystemExclusions)+
			len(developmentExclusions)+len(textDataExclusions))
	out = append(out, webHTTPExclusions...)
	out = append(out, fileSystemExclusions...)
	out = append(out, developmentExclusions...)
	out = append(out, textDataExclusions...)
	return out
}

// shouldExcludeQuery reports whether a search query targets a capability the
// client already has, making its results mostly redundant.
func shouldExcludeQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, term := range allExclusions() {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// isRedundantServer reports whether a result's name or description lands on
// an exclusion term.
func isRedundantServer(displayName, description string) bool {
	name := strings.ToLower(displayName)
	desc := strings.ToLower(description)
	for _, term := range allExclusions() {
		if strings.Contains(desc, term) || strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// filterRedundant drops results that duplicate native capabilities.
func filterRedundant(results []searchResult) []searchResult {
	kept := make([]searchResult, 0, len(results))
	for _, r := range results {
		if !isRedundantServer(r.DisplayName, r.Description) {
			kept = append(kept, r)
		}
	}
	return kept
}

// suggestAlternatives proposes up to three more specific search terms for an
// excluded query.
func suggestAlternatives(query string) []string {
	lower := strings.ToLower(query)
	var suggestions []string

	if containsAny(lower, "web", "http", "api") {
		suggestions = append(suggestions,
			"github api client", "stripe payments", "slack integration",
			"aws services", "google cloud api", "supabase database")
	}
	if containsAny(lower, "file", "document", "text") {
		suggestions = append(suggestions,
			"pdf manipulation", "image processing", "excel advanced",
			"email templates", "document generation")
	}
	if containsAny(lower, "development", "tools", "utility") {
		suggestions = append(suggestions,
			"postgresql client", "mongodb tools", "redis client",
			"database schema", "orm tools")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
