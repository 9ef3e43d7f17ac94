package main

import "fmt"

// Exit codes
const (
	ExitFilesFailed = 1 // At least one puzzle file could not be solved
	ExitUsage       = 2 // No puzzle file among the arguments
)

// ExitError signals a non-zero exit code without calling os.Exit in RunE
// handlers
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any
func (e *ExitError) Unwrap() error {
	return e.Err
}
