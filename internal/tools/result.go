package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-scout/scout-mcp/internal/clientconfig"
	"github.com/mcp-scout/scout-mcp/internal/inventory"
)

// Tool result statuses.
const (
	statusSuccess  = "success"
	statusError    = "error"
	statusFiltered = "filtered"
)

// Stable error codes surfaced to callers.
const (
	codeInvalidInput           = "INVALID_INPUT"
	codeMissingAPIKey          = "MISSING_API_KEY"
	codeRedundantCapability    = "REDUNDANT_CAPABILITY"
	codeInvalidFiltersJSON     = "INVALID_FILTERS_JSON"
	codeInvalidFiltersFormat   = "INVALID_FILTERS_FORMAT"
	codeInvalidFiltersType     = "INVALID_FILTERS_TYPE"
	codeSearchFailed           = "SEARCH_FAILED"
	codeInfoFailed             = "INFO_FAILED"
	codeInstallFailed          = "INSTALL_FAILED"
	codeInstallTimeout         = "INSTALL_TIMEOUT"
	codeInstallError           = "INSTALL_ERROR"
	codeConfigNotFound         = "CONFIG_NOT_FOUND"
	codeConfigIOError          = "CONFIG_IO_ERROR"
	codeConfigCheckFailed      = "CONFIG_CHECK_FAILED"
	codeNotFound               = "NOT_FOUND"
	codeListError              = "LIST_ERROR"
	codeConfigCollectionFailed = "CONFIG_COLLECTION_FAILED"
)

// payload is one structured tool outcome, rendered as indented JSON text.
type payload map[string]any

func result(p payload) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func errorResult(code, message string) (*mcp.CallToolResult, error) {
	return errorResultWith(code, message, nil)
}

func errorResultWith(code, message string, extra payload) (*mcp.CallToolResult, error) {
	p := payload{
		"status":     statusError,
		"error_code": code,
		"message":    message,
	}
	for k, v := range extra {
		p[k] = v
	}
	return result(p)
}

func missingKeyResult(action string) (*mcp.CallToolResult, error) {
	return errorResult(codeMissingAPIKey, fmt.Sprintf(
		"SMITHERY_API_KEY not found in environment variable or client config. Please set your API key to %s.",
		action))
}

// configErrorResult maps configuration layer failures to their stable codes.
// Errors outside the known taxonomy fall back to the given code.
func configErrorResult(err error, fallbackCode string, extra payload) (*mcp.CallToolResult, error) {
	var (
		invalidErr  *inventory.InvalidInputError
		notFoundErr *clientconfig.NotFoundError
		ioErr       *clientconfig.IOError
		entryErr    *inventory.EntryNotFoundError
	)
	switch {
	case errors.As(err, &invalidErr):
		return errorResultWith(codeInvalidInput, invalidErr.Error(), extra)
	case errors.As(err, &notFoundErr):
		return errorResultWith(codeConfigNotFound, notFoundErr.Error(), extra)
	case errors.As(err, &ioErr):
		return errorResultWith(codeConfigIOError, ioErr.Error(), extra)
	case errors.As(err, &entryErr):
		merged := payload{
			"qualified_name": entryErr.QualifiedName,
			"sanitized_name": entryErr.SanitizedName,
		}
		for k, v := range extra {
			merged[k] = v
		}
		return errorResultWith(codeNotFound, entryErr.Error(), merged)
	default:
		return errorResultWith(fallbackCode, err.Error(), extra)
	}
}
