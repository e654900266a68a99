// pkg/apierror/apierror.go

// Package apierror defines the error taxonomy shared by the catalog
// client and the web layer. Every failure a user can see is one of three
// kinds: invalid input caught before any request, a transport failure
// with no response, or a response with a non-success status.
package apierror

import (
	"errors"
	"net/http"
)

// Code classifies an error for presentation and status mapping.
type Code string

const (
	Validation Code = "ValidationError"
	Network    Code = "NetworkError"
	API        Code = "ApiError"
)

// Error is a user-presentable failure. Message is safe to show verbatim.
type Error struct {
	Code    Code
	Message string
	Status  int   // HTTP status of the failed response, 0 otherwise
	Err     error // underlying cause, if any
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error to the status the web layer responds with.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case Validation:
		return http.StatusBadRequest
	case Network:
		return http.StatusBadGateway
	case API:
		if e.Status != 0 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation reports invalid form input. No request was made.
func NewValidation(message string) *Error {
	return &Error{Code: Validation, Message: message}
}

// NewNetwork reports a transport failure where no response was received.
func NewNetwork(err error) *Error {
	return &Error{Code: Network, Message: "could not reach the catalog service: " + err.Error(), Err: err}
}

// NewAPI reports a non-success response. The server-provided message is
// preferred; an empty one falls back to the HTTP status text.
func NewAPI(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Code: API, Message: message, Status: status}
}

// CodeOf returns the code of err, or an empty code when err is not an
// *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
