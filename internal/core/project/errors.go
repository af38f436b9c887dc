// Package project implements flaskforge's scaffolding domain logic: the
// overwrite decision, the fixed directory layout, and writing generated
// files under the project root.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidSpec indicates the project spec failed validation.
	ErrInvalidSpec = errors.New("invalid project spec")

	// ErrNotADirectory indicates the project path exists but is a regular file.
	ErrNotADirectory = errors.New("project path exists and is not a directory")

	// ErrInvalidPath indicates a generated file path escapes the project root.
	ErrInvalidPath = errors.New("generated file path escapes project root")
)
