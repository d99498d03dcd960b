package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record has the requested identifier.
var ErrNotFound = errors.New("question not found")

// ErrAmbiguous is returned when an identifier prefix matches several records.
var ErrAmbiguous = errors.New("question reference is ambiguous")

// CorruptDataError reports a persisted line that is not a well-formed record.
type CorruptDataError struct {
	Path string
	Line int
	Err  error
}

// Error returns the file, line, and cause of the corruption.
func (err *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt question bank %s:%d: %v", err.Path, err.Line, err.Err)
}

// Unwrap exposes the decoding or validation cause.
func (err *CorruptDataError) Unwrap() error {
	return err.Err
}
