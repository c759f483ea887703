// Package apperrors defines the error taxonomy shared by services and the
// HTTP layer. Every service failure is expressed as an *Error carrying the
// HTTP status code it should surface with; the webserver's central error
// handler translates it into a JSON body. Anything that is not an *Error
// collapses to a generic 500 so internal details never leak to clients.
package apperrors

import (
	"errors"
	"net/http"
)

type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an error with an explicit status code.
func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// Validation marks bad input shape or values (400).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// BusinessRule marks a domain rule violation such as deleting the last
// admin account (400).
func BusinessRule(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized marks failed authentication (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound marks a missing entity (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Unexpected marks an internal failure (500).
func Unexpected(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
