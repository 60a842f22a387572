// Package httperr carries the API's wire error shape: a bare
// {"error": "..."} object instead of huma's default RFC 9457 problem
// details.
package httperr

import "net/http"

// Error implements huma.StatusError, so handlers can return it directly and
// huma serializes it as the response body.
type Error struct {
	status  int
	Message string `json:"error"`
}

func New(status int, message string) *Error {
	return &Error{status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}
