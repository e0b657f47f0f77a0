package store

import (
	"fmt"
)

// ValidationError reports a create/update rejected for a missing or invalid
// field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an id with no matching record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job with ID %s not found", e.ID)
}
