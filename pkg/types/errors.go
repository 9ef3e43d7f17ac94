package types

import (
	"errors"
	"fmt"
)

// ErrMalformedPuzzle matches every structural puzzle error under errors.Is
var ErrMalformedPuzzle = errors.New("malformed puzzle")

// Structural reasons a puzzle can be rejected
var (
	ErrNoGrid           = errors.New("no grid content")
	ErrNoWords          = errors.New("no words to search for")
	ErrInconsistentRows = errors.New("grid rows have inconsistent lengths")
)

// MalformedPuzzleError reports which structural rule a puzzle violated
type MalformedPuzzleError struct {
	Reason error  // One of ErrNoGrid, ErrNoWords, ErrInconsistentRows
	Detail string // Optional context, e.g. the offending row
}

// NewMalformedPuzzleError creates a malformed puzzle error for the given reason
func NewMalformedPuzzleError(reason error, detail string) *MalformedPuzzleError {
	return &MalformedPuzzleError{Reason: reason, Detail: detail}
}

// Error implements the error interface
func (e *MalformedPuzzleError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %v", ErrMalformedPuzzle, e.Reason)
	}
	return fmt.Sprintf("%v: %v (%s)", ErrMalformedPuzzle, e.Reason, e.Detail)
}

// Is reports whether target is ErrMalformedPuzzle
func (e *MalformedPuzzleError) Is(target error) bool {
	return target == ErrMalformedPuzzle
}

// Unwrap exposes the specific reason
func (e *MalformedPuzzleError) Unwrap() error {
	return e.Reason
}
