package api

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is reported when the server gives no usable message.
const FallbackMessage = "request failed"

// Error is a failed backend request: either a transport failure (Status 0,
// Err set) or a non-success response carrying the server's message.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", FallbackMessage, e.Err)
	}
	return FallbackMessage
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
