// Package inventory owns the wardrobe: item bookkeeping, availability, loading, and read-only snapshots.
package inventory

import "fmt"

// LoadError represents an error during wardrobe file I/O or decoding
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ItemError represents a rejected wardrobe mutation
type ItemError struct {
	ID       int
	Message  string
	NotFound bool
	Cause    error
}

func (e *ItemError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("item %d: %s: %v", e.ID, e.Message, e.Cause)
	}
	return fmt.Sprintf("item %d: %s", e.ID, e.Message)
}

func (e *ItemError) Unwrap() error {
	return e.Cause
}
