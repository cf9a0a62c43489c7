package app

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
	"github.com/mcp-scout/scout-mcp/internal/config"
	"github.com/mcp-scout/scout-mcp/internal/installer"
	"github.com/mcp-scout/scout-mcp/internal/inventory"
	"github.com/mcp-scout/scout-mcp/internal/registry"
	"github.com/mcp-scout/scout-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server on stdio",
	Long: `Start the MCP tool server, speaking the MCP stdio transport.

Registry operations require a Smithery API key, resolved from the
SMITHERY_API_KEY environment variable or from a server entry in the global
client configuration. Tools that do not reach the registry work without one.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("registry-url", registry.DefaultBaseURL, "Base URL of the server registry")
	serveCmd.Flags().Duration("install-timeout", installer.DefaultTimeout, "Timeout for a single install attempt")

	err := viper.BindPFlag("registry-url", serveCmd.Flags().Lookup("registry-url"))
	if err != nil {
		slog.Error("Error binding registry-url flag", "error", err)
	}
	err = viper.BindPFlag("install-timeout", serveCmd.Flags().Lookup("install-timeout"))
	if err != nil {
		slog.Error("Error binding install-timeout flag", "error", err)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store := clientconfig.NewFileStore()
	resolver := inventory.NewResolver(store, settings.HomeDir, settings.WorkDir)
	planner := inventory.NewPlanner(store, settings.HomeDir)
	inst := installer.New(installer.NewExecRunner(), nil)

	globalPath := planner.GlobalPath()
	provider := func() (registry.Client, bool) {
		key, ok := registry.ResolveAPIKey(globalPath)
		if !ok {
			return nil, false
		}
		return registry.NewClient(settings.RegistryURL, key, settings.RequestTimeout), true
	}

	slog.Info("Starting MCP tool server on stdio",
		"registry_url", settings.RegistryURL,
		"install_timeout", settings.InstallTimeout)

	s := tools.New(tools.Deps{
		Resolver:       resolver,
		Planner:        planner,
		Installer:      inst,
		Registry:       provider,
		InstallTimeout: settings.InstallTimeout,
	})

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
