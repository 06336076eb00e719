package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrUnnamedField indicates a [[field]] entry without a name.
	ErrUnnamedField = errors.New("config: field entry missing name")

	// ErrDuplicateField indicates two [[field]] entries share a name.
	ErrDuplicateField = errors.New("config: duplicate field name")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("config: watcher is closed")
)

// ParseError wraps a TOML syntax error with its source path.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying TOML error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
