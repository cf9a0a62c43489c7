// Package config resolves runtime settings for scout-mcp from bound flags
// and environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcp-scout/scout-mcp/internal/installer"
	"github.com/mcp-scout/scout-mcp/internal/registry"
)

// EnvPrefix is the prefix for application environment variables, e.g.
// SCOUT_REGISTRY_URL and SCOUT_LOG_LEVEL.
const EnvPrefix = "SCOUT"

// Settings is the resolved runtime configuration.
type Settings struct {
	// RegistryURL is the base URL of the server registry.
	RegistryURL string

	// RequestTimeout bounds a single registry request.
	RequestTimeout time.Duration

	// InstallTimeout bounds a single installer attempt.
	InstallTimeout time.Duration

	// HomeDir anchors the user-scoped configuration documents.
	HomeDir string

	// WorkDir selects the project-scoped configuration document.
	WorkDir string
}

// Load resolves settings from viper-bound flags and SCOUT_-prefixed
// environment variables, falling back to package defaults.
func Load() (*Settings, error) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	s := &Settings{
		RegistryURL:    viper.GetString("registry-url"),
		RequestTimeout: registry.DefaultTimeout,
		InstallTimeout: viper.GetDuration("install-timeout"),
	}
	if s.RegistryURL == "" {
		s.RegistryURL = registry.DefaultBaseURL
	}
	if s.InstallTimeout <= 0 {
		s.InstallTimeout = installer.DefaultTimeout
	}

	parsed, err := url.Parse(s.RegistryURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid registry URL %q", s.RegistryURL)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	s.HomeDir = home
	s.WorkDir = workDir

	return s, nil
}
