package installer

import "strings"

// APIRequirement describes environment configuration a server is known to
// need before it is usable.
type APIRequirement struct {
	RequiresAPIKey bool   `json:"requires_api_key"`
	EnvVar         string `json:"env_var,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
}

// knownAPIKeyServices maps well-known service names to the credentials they
// require. Ordered so detection is deterministic.
var knownAPIKeyServices = []struct {
	service      string
	envVar       string
	instructions string
}{
	{
		service:      "redis",
		envVar:       "REDIS_URL",
		instructions: "Set REDIS_URL environment variable with your Redis connection string",
	},
	{
		service:      "datadog",
		envVar:       "DD_API_KEY",
		instructions: "Set DD_API_KEY environment variable with your Datadog API key",
	},
	{
		service:      "slack",
		envVar:       "SLACK_BOT_TOKEN",
		instructions: "Set SLACK_BOT_TOKEN environment variable with your Slack bot token",
	},
	{
		service:      "github",
		envVar:       "GITHUB_TOKEN",
		instructions: "Set GITHUB_TOKEN environment variable with your GitHub personal access token",
	},
	{
		service:      "aws",
		envVar:       "AWS_ACCESS_KEY_ID",
		instructions: "Configure AWS credentials via AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY environment variables",
	},
}

// DetectAPIRequirement reports whether a server is known to require API
// credentials, based on its qualified name.
func DetectAPIRequirement(qualifiedName string) APIRequirement {
	lower := strings.ToLower(qualifiedName)
	for _, svc := range knownAPIKeyServices {
		if strings.Contains(lower, svc.service) {
			return APIRequirement{
				RequiresAPIKey: true,
				EnvVar:         svc.envVar,
				Instructions:   svc.instructions,
			}
		}
	}
	return APIRequirement{}
}
