// Package selection enumerates valid outfit combinations in stages of increasing complexity.
package selection

import "fmt"

// Error represents an error that occurs during combination generation
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
