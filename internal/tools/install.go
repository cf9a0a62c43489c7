package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/installer"
)

const defaultInstallClient = "claude"

// InstallTool drives the Smithery CLI to install a server into a client
// configuration.
type InstallTool struct {
	installer *installer.Installer
	timeout   time.Duration
}

// NewInstallTool creates the install_mcp tool. Zero timeout selects the
// installer default.
func NewInstallTool(inst *installer.Installer, timeout time.Duration) *InstallTool {
	if timeout <= 0 {
		timeout = installer.DefaultTimeout
	}
	return &InstallTool{installer: inst, timeout: timeout}
}

// Definition describes the tool to MCP clients.
func (t *InstallTool) Definition() mcp.Tool {
	return mcp.NewTool("install_mcp",
		mcp.WithDescription(
			"Install an MCP server into a client configuration using the official "+
				"Smithery CLI, with timeout handling and API key guidance."),
		mcp.WithString("qualified_name",
			mcp.Required(),
			mcp.Description("Unique identifier of the server to install, e.g. @redis/mcp-redis"),
		),
		mcp.WithString("client",
			mcp.Description("Target client for installation (claude, cursor, windsurf, ...)"),
		),
		mcp.WithObject("config",
			mcp.Description("Optional configuration object passed to the server"),
		),
		mcp.WithNumber("timeout_seconds",
			mcp.DefaultNumber(float64(t.timeout/time.Second)),
			mcp.Description("Maximum time to wait for a single installation attempt"),
		),
	)
}

// Handle runs one installation.
func (t *InstallTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := requireQualifiedName(req)
	if !ok {
		return invalidQualifiedName()
	}

	client := req.GetString("client", defaultInstallClient)
	config, _ := req.GetArguments()["config"].(map[string]any)
	timeout := time.Duration(req.GetInt("timeout_seconds", int(t.timeout/time.Second))) * time.Second

	apiReq := installer.DetectAPIRequirement(name)

	res, err := t.installer.Install(ctx, installer.Request{
		QualifiedName: name,
		Client:        client,
		Config:        config,
		Timeout:       timeout,
	})
	if err != nil {
		return installErrorResult(err, name, client, apiReq)
	}

	message := fmt.Sprintf(
		"Successfully installed %s for %s client. Restart your terminal to use the new server.",
		name, client)
	if apiReq.RequiresAPIKey {
		message += "\n\nIMPORTANT: This server requires API configuration:\n" + apiReq.Instructions
	}

	return result(payload{
		"status":           statusSuccess,
		"message":          message,
		"qualified_name":   name,
		"client":           client,
		"install_command":  res.Command,
		"output":           res.Output,
		"api_requirements": apiReq,
	})
}

func installErrorResult(err error, name, client string, apiReq installer.APIRequirement) (*mcp.CallToolResult, error) {
	base := payload{
		"qualified_name":   name,
		"client":           client,
		"api_requirements": apiReq,
	}

	var exitErr *installer.ExitError
	if errors.As(err, &exitErr) {
		base["install_command"] = exitErr.Command
		base["error_output"] = exitErr.Stderr
		return errorResultWith(codeInstallFailed, exitErr.Error(), base)
	}

	var timeoutErr *installer.TimeoutError
	if errors.As(err, &timeoutErr) {
		base["install_command"] = timeoutErr.Command
		base["timeout_seconds"] = int(timeoutErr.Timeout / time.Second)
		base["retry_attempts"] = timeoutErr.Attempts
		message := fmt.Sprintf("%s. Try running manually: %s", timeoutErr.Error(), timeoutErr.Command)
		return errorResultWith(codeInstallTimeout, message, base)
	}

	return errorResultWith(codeInstallError,
		fmt.Sprintf("Unexpected error during installation: %v", err), base)
}
