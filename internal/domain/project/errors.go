package project

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrValidation indicates a draft failed validation.
	ErrValidation = errors.New("project validation failed")
	// ErrUnknownStatus indicates a status outside the known set.
	ErrUnknownStatus = errors.New("unknown project status")
	// ErrUnknownPriority indicates a priority outside the known set.
	ErrUnknownPriority = errors.New("unknown project priority")
)

// ValidationError carries the per-field messages of a rejected draft.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[Field(k)]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is lets errors.Is match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
