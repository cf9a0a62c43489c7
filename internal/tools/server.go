// Package tools implements the MCP tool surface: registry search and
// inspection, installation, verification, listing and removal of servers.
package tools

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mcp-scout/scout-mcp/internal/installer"
	"github.com/mcp-scout/scout-mcp/internal/inventory"
	"github.com/mcp-scout/scout-mcp/internal/registry"
	"github.com/mcp-scout/scout-mcp/internal/versions"
)

// ClientProvider yields a registry client authenticated for the current
// environment. It reports false when no API key could be resolved, letting
// each tool surface the missing key instead of failing at startup.
type ClientProvider func() (registry.Client, bool)

// Deps carries everything the tool surface needs.
type Deps struct {
	Resolver  *inventory.Resolver
	Planner   *inventory.Planner
	Installer *installer.Installer
	Registry  ClientProvider

	// InstallTimeout bounds a single install attempt; zero selects the
	// installer default.
	InstallTimeout time.Duration
}

const serverInstructions = `scout-mcp discovers, installs and manages MCP servers from the Smithery Registry.

Typical flow:
 1. search_registry to find candidate servers for a capability.
 2. get_mcp_info or collect_config to inspect connections and required configuration.
 3. install_mcp to install into a client configuration.
 4. verify_installation or list_installed to confirm the result.
 5. uninstall_mcp to remove a server from the global configuration.

Search results exclude servers that duplicate capabilities the client already has natively.`

// New assembles the MCP server with every tool registered.
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"scout-mcp",
		versions.GetVersionInfo().Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	searchTool := NewSearchTool(deps.Registry)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	infoTool := NewInfoTool(deps.Registry)
	s.AddTool(infoTool.Definition(), infoTool.Handle)

	collectTool := NewCollectTool(deps.Registry)
	s.AddTool(collectTool.Definition(), collectTool.Handle)

	installTool := NewInstallTool(deps.Installer, deps.InstallTimeout)
	s.AddTool(installTool.Definition(), installTool.Handle)

	verifyTool := NewVerifyTool(deps.Resolver)
	s.AddTool(verifyTool.Definition(), verifyTool.Handle)

	listTool := NewListTool(deps.Resolver)
	s.AddTool(listTool.Definition(), listTool.Handle)

	uninstallTool := NewUninstallTool(deps.Planner)
	s.AddTool(uninstallTool.Definition(), uninstallTool.Handle)

	return s
}
