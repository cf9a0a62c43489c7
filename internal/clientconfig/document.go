package clientconfig

import (
	"encoding/json"
	"fmt"
)

const (
	serversKey  = "mcpServers"
	projectsKey = "projects"
)

// ServerEntry is one installed server declaration as recorded in a document.
// Missing args and env default to empty.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Project is a per-project section inside the user-home document, keyed by
// absolute project path.
type Project struct {
	MCPServers map[string]ServerEntry `json:"mcpServers,omitempty"`
}

// Document is one on-disk configuration file. The raw top-level object is
// retained so that saving never discards keys this program does not model.
type Document struct {
	// MCPServers is the root-level server mapping. Never nil after parse.
	MCPServers map[string]ServerEntry

	// Projects holds per-project sections. Never nil after parse.
	Projects map[string]Project

	raw map[string]json.RawMessage
}

// NewDocument returns an empty document, useful for constructing fixtures.
func NewDocument() *Document {
	return &Document{
		MCPServers: map[string]ServerEntry{},
		Projects:   map[string]Project{},
		raw:        map[string]json.RawMessage{},
	}
}

// parseDocument decodes a configuration document. Unknown top-level keys are
// preserved verbatim; a mcpServers or projects value with the wrong shape is
// treated as a malformed document.
func parseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}

	doc := NewDocument()
	doc.raw = raw

	if msg, ok := raw[serversKey]; ok {
		if err := json.Unmarshal(msg, &doc.MCPServers); err != nil {
			return nil, fmt.Errorf("invalid %s mapping: %w", serversKey, err)
		}
	}
	if msg, ok := raw[projectsKey]; ok {
		if err := json.Unmarshal(msg, &doc.Projects); err != nil {
			return nil, fmt.Errorf("invalid %s mapping: %w", projectsKey, err)
		}
	}

	return doc, nil
}

// encode serializes the document, folding the (possibly mutated) server
// mapping back into the preserved raw object. Only the mcpServers key is
// rewritten; everything else round-trips untouched.
func (d *Document) encode() ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(d.raw)+1)
	for k, v := range d.raw {
		raw[k] = v
	}

	servers, err := json.Marshal(d.MCPServers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s mapping: %w", serversKey, err)
	}
	raw[serversKey] = servers

	return json.MarshalIndent(raw, "", "  ")
}
