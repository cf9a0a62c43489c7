package clientconfig

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that no configuration document could be read at
// any of the checked paths. It carries every candidate path so callers can
// report exactly where the lookup went.
type NotFoundError struct {
	CheckedPaths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no client configuration found (checked: %s)",
		strings.Join(e.CheckedPaths, ", "))
}

// IOError indicates a document that exists but could not be parsed or
// written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("client configuration %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
