package clientconfig

import "os"

// Store reads and writes configuration documents. It performs I/O only;
// merge precedence lives with the inventory resolver.
type Store interface {
	// Load reads and parses the document at path. A missing file yields a
	// *NotFoundError; an unreadable or malformed file yields a *IOError.
	Load(path string) (*Document, error)

	// Save writes the document back to path, preserving top-level keys the
	// document does not model. Failures yield a *IOError.
	Save(path string, doc *Document) error
}

type fileStore struct{}

// NewFileStore returns a Store backed by the local filesystem.
func NewFileStore() Store {
	return &fileStore{}
}

func (*fileStore) Load(path string) (*Document, error) {
	//nolint:gosec // Candidate paths are fixed well-known locations.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{CheckedPaths: []string{path}}
		}
		return nil, &IOError{Path: path, Err: err}
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return doc, nil
}

func (*fileStore) Save(path string, doc *Document) error {
	data, err := doc.encode()
	if err != nil {
		return &IOError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
