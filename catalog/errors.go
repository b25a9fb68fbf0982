package catalog

import "fmt"

// ValidationError reports user input that fails a field constraint. The
// mutation is not applied and nothing is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an id that is not in the relevant collection.
type NotFoundError struct {
	Kind string // "category" or "command"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
