package services

import "fmt"

// InvalidEntityError reports an entity without a usable coordinate.
// It points at a data integrity problem in the collection handed to the
// filter, not at bad user input.
type InvalidEntityError struct {
	Index int
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity at index %d: missing coordinates", e.Index)
}
