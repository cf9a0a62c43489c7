package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
	"github.com/mcp-scout/scout-mcp/internal/config"
	"github.com/mcp-scout/scout-mcp/internal/inventory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed MCP servers",
	Long: `List the merged inventory of MCP servers across every client
configuration source, in precedence order.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store := clientconfig.NewFileStore()
	resolver := inventory.NewResolver(store, settings.HomeDir, settings.WorkDir)

	inv, err := resolver.Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve inventory: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Command", "Args")
	for _, entry := range inv.Entries {
		if err := table.Append(entry.Name, entry.Command, strings.Join(entry.Args, " ")); err != nil {
			return fmt.Errorf("failed to render inventory: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render inventory: %w", err)
	}

	fmt.Printf("%d servers from %d sources\n", len(inv.Entries), len(inv.Sources))
	return nil
}
