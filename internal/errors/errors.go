package errors

import (
	"errors"
)

// Sentinel errors for different categories
var (
	// ErrNotFound - requested skill or category does not exist (404 over HTTP, exit message in CLI)
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput - malformed query parameter, filter expression or body (400)
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable - catalog files unreadable or malformed (503, retry after fixing the data dir)
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrConflict - concurrent writer holds the catalog lock (409)
	ErrConflict = errors.New("conflict")

	// ErrInternal - anything else (500, generic message + trace id)
	ErrInternal = errors.New("internal error")
)
