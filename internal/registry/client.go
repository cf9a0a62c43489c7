// Package registry provides an authenticated read-only client for the
// Smithery server registry.
package registry

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public registry endpoint.
	DefaultBaseURL = "https://registry.smithery.ai"

	// DefaultTimeout is the default timeout for registry requests.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the registry's default page size.
	DefaultPageSize = 10

	// maxResponseSize caps registry responses (10MB).
	maxResponseSize = 10 * 1024 * 1024

	userAgent = "scout-mcp/1.0"

	// hostedServerBase is where deployed servers accept connections.
	hostedServerBase = "https://server.smithery.ai"
)

// ListOptions narrows a list servers request.
type ListOptions struct {
	// Query is the search term; empty lists everything.
	Query string

	// Page is 1-based; zero means the first page.
	Page int

	// PageSize defaults to DefaultPageSize when zero.
	PageSize int
}

// Client is the interface to the server registry.
type Client interface {
	// ListServers retrieves one page of servers matching the options.
	ListServers(ctx context.Context, opts ListOptions) (*ServerList, error)

	// GetServer retrieves full detail for one qualified name.
	GetServer(ctx context.Context, qualifiedName string) (*ServerDetail, error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a registry client that authenticates every request with
// the given bearer token. Zero values fall back to the defaults.
func NewClient(baseURL, token string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) ListServers(ctx context.Context, opts ListOptions) (*ServerList, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/servers?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var list ServerList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse server list: %w", err)
	}
	return &list, nil
}

func (c *httpClient) GetServer(ctx context.Context, qualifiedName string) (*ServerDetail, error) {
	// Qualified names contain "@" and "/" and are addressed as literal path
	// segments by the registry.
	body, err := c.get(ctx, fmt.Sprintf("%s/servers/%s", c.baseURL, qualifiedName))
	if err != nil {
		return nil, err
	}

	var detail ServerDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse server detail: %w", err)
	}
	return &detail, nil
}

// get performs an authenticated GET request and returns the response body.
func (c *httpClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, NewHTTPError(resp.StatusCode, requestURL, strings.TrimSpace(string(detail)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > maxResponseSize {
		return nil, fmt.Errorf("response size exceeds maximum allowed size of %d bytes", maxResponseSize)
	}

	return body, nil
}

// ConnectionURL returns the hosted WebSocket endpoint for a deployed server,
// with the connection config base64-encoded in the query string.
func ConnectionURL(qualifiedName string, config map[string]any) (string, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to encode connection config: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("%s/%s/ws?config=%s", hostedServerBase, qualifiedName, encoded), nil
}
