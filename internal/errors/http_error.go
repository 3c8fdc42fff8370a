package errors

import "net/http"

// HTTPError is an error carrying the status code the handler should
// answer with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Helpers for the common cases on the admin surface.
func ErrUnauthorized(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
func ErrBadRequest(msg string) *HTTPError   { return NewHTTPError(http.StatusBadRequest, msg) }
