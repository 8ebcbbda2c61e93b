package session

import "errors"

var (
	// ErrFormClosed indicates a form operation was called with no form open.
	ErrFormClosed = errors.New("project form is not open")
	// ErrUnknownField indicates a draft field that doesn't exist.
	ErrUnknownField = errors.New("unknown form field")
)
