package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/outfit-planner/internal/db"
	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownItems indicates a request referenced item IDs that are not in the wardrobe
type ErrUnknownItems struct {
	IDs []int
}

func (e *ErrUnknownItems) Error() string {
	return fmt.Sprintf("unknown item ids: %v", e.IDs)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var queryErr *pipeline.QueryError
	var unknownErr *ErrUnknownItems
	var itemErr *inventory.ItemError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &queryErr):
		return http.StatusBadRequest
	case errors.As(err, &unknownErr), errors.Is(err, db.ErrItemNotFound):
		return http.StatusNotFound
	case errors.As(err, &itemErr):
		if itemErr.NotFound {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
