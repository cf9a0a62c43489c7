package registry

// ServerSummary is one item in a registry list response.
type ServerSummary struct {
	QualifiedName string `json:"qualifiedName"`
	DisplayName   string `json:"displayName"`
	Description   string `json:"description"`
	Homepage      string `json:"homepage"`
	UseCount      int    `json:"useCount"`
	IsDeployed    *bool  `json:"isDeployed,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Pagination is the paging metadata attached to a list response.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}

// ServerList is the response from the list servers endpoint.
type ServerList struct {
	Servers    []ServerSummary `json:"servers"`
	Pagination Pagination      `json:"pagination"`
}

// Connection is one connection configuration offered by a server. Optional
// fields are pointers so absence is distinguishable from the zero value.
type Connection struct {
	Type         string         `json:"type"`
	URL          *string        `json:"url,omitempty"`
	ConfigSchema map[string]any `json:"configSchema,omitempty"`
}

// SecurityInfo carries the registry's security scan verdict.
type SecurityInfo struct {
	ScanPassed bool `json:"scanPassed"`
}

// ToolInfo describes one tool a server provides.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}

// ServerDetail is the full detail response for a single server.
type ServerDetail struct {
	QualifiedName string       `json:"qualifiedName"`
	DisplayName   string       `json:"displayName"`
	Description   *string      `json:"description,omitempty"`
	IconURL       *string      `json:"iconUrl,omitempty"`
	Remote        *bool        `json:"remote,omitempty"`
	DeploymentURL *string      `json:"deploymentUrl,omitempty"`
	Connections   []Connection `json:"connections"`
	Security      *SecurityInfo `json:"security,omitempty"`
	Tools         []ToolInfo    `json:"tools,omitempty"`
}
