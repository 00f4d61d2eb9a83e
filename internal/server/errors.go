package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates a request failed struct validation.
type ErrValidation struct {
	Detail string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Detail)
}

// ErrBadRequest indicates a malformed request body.
type ErrBadRequest struct {
	Detail string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Detail)
}

// ErrTooLarge indicates input text exceeded the configured maximum length.
type ErrTooLarge struct {
	Field string
	Limit int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("%s exceeds the maximum length of %d characters", e.Field, e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrBadRequest:
		return http.StatusBadRequest
	case *ErrTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
