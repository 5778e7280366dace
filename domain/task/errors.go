package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the requested task does not exist.
var ErrNotFound = errors.New("Task not found.")

// Validation messages returned to clients.
const (
	MsgInvalidJSON        = "Invalid JSON."
	MsgTitleRequired      = "Title is required and cannot be empty."
	MsgTitleRequiredOnPut = "Title is required for full update."
	MsgTitleBlank         = "Title cannot be blank."
)

// ValidationError is returned when a payload breaks a task invariant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

func invalidChoice[T ~string](field string, allowed []T) error {
	quoted := make([]string, len(allowed))
	for i, v := range allowed {
		quoted[i] = "'" + string(v) + "'"
	}
	return invalid(fmt.Sprintf("Invalid %s. Allowed: [%s]", field, strings.Join(quoted, ", ")))
}
