package inventory

import "fmt"

// InvalidInputError reports a blank identifier, rejected before any I/O is
// attempted.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s is required and cannot be empty", e.Field)
}

// EntryNotFoundError reports that nothing in the searched scope matched the
// qualified name. It names the expected sanitized form so callers can see
// why nothing matched.
type EntryNotFoundError struct {
	QualifiedName string
	SanitizedName string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("%q not found in configuration (expected sanitized name: %q)",
		e.QualifiedName, e.SanitizedName)
}
