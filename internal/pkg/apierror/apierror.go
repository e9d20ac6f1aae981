// Package apierror holds the single error kind surfaced to API clients.
package apierror

import (
	"errors"
	"net/http"
)

// Error carries a client-facing message and the HTTP status it is sent with.
type Error struct {
	Message    string
	StatusCode int
}

// New returns an Error with the given status. A zero status means 400.
func New(message string, statusCode int) *Error {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &Error{Message: message, StatusCode: statusCode}
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

func (e *Error) Error() string {
	return e.Message
}

// ToMap renders the JSON body.
func (e *Error) ToMap() map[string]any {
	return map[string]any{"message": e.Message}
}

// As unwraps err into an *Error when one is in the chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
