package registry

import (
	"os"

	"github.com/tidwall/gjson"
)

// APIKeyEnvVar is the environment variable holding the registry bearer token.
const APIKeyEnvVar = "SMITHERY_API_KEY"

// ResolveAPIKey returns the registry bearer token. The environment variable
// takes priority; failing that, the global client configuration document is
// scanned for a server entry carrying the key in its env block. Returns
// false when no key can be found anywhere.
func ResolveAPIKey(globalConfigPath string) (string, bool) {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, true
	}

	//nolint:gosec // The global config path is a fixed well-known location.
	data, err := os.ReadFile(globalConfigPath)
	if err != nil {
		return "", false
	}

	var key string
	gjson.GetBytes(data, "mcpServers").ForEach(func(_, server gjson.Result) bool {
		if v := server.Get("env." + APIKeyEnvVar); v.Exists() && v.String() != "" {
			key = v.String()
			return false
		}
		return true
	})

	return key, key != ""
}
