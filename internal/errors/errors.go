// Package errors provides sentinel errors and custom error types for the menukit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotInteractive indicates that stdin/stdout is not a terminal
	ErrNotInteractive = errors.New("not an interactive terminal")

	// ErrSessionCanceled indicates that the user canceled a menu session
	ErrSessionCanceled = errors.New("session canceled")

	// ErrDemoNotFound indicates that no demo with the requested name exists
	ErrDemoNotFound = errors.New("demo not found")
)

// DemoNotFoundError represents an error when a named demo does not exist
type DemoNotFoundError struct {
	Name      string
	Available []string
}

func (e *DemoNotFoundError) Error() string {
	return fmt.Sprintf("demo %q does not exist (available: %v)", e.Name, e.Available)
}

// Is returns true if the target error is ErrDemoNotFound
func (e *DemoNotFoundError) Is(target error) bool {
	return target == ErrDemoNotFound
}

// NewDemoNotFoundError creates a new DemoNotFoundError
func NewDemoNotFoundError(name string, available []string) *DemoNotFoundError {
	return &DemoNotFoundError{Name: name, Available: available}
}
