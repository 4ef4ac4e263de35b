package entities

import "errors"

// Domain errors
var (
	// Batch errors
	ErrBatchNotFound = errors.New("batch result not found")
	ErrEmptySource   = errors.New("tabular source is empty")

	// Export errors
	ErrInvalidExport = errors.New("invalid export document")
)
