package domain

import (
	"errors"
	"fmt"
)

// ErrLoad marks a backing store that is missing, unreadable or malformed.
// It is never used for an absent id.
var ErrLoad = errors.New("catalog load failed")

type LoadError struct {
	Collection string
	Path       string
	Err        error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to load %s from %s: %v", e.Collection, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

type DuplicateIDError struct {
	Collection string
	ID         string
}

func (e *DuplicateIDError) Error() string {
	return "duplicate " + e.Collection + " id: " + e.ID
}

type ValidationError struct {
	Field   string
	Message string
	Index   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record[%d] %s - %s", e.Index, e.Field, e.Message)
}
