package errors

import (
	"errors"
	"strings"
)

// Code identifies a structured error type used across the application.
type Code string

const (
	// Generic codes
	CodeUnknown Code = "unknown"

	// Backend/transport errors
	CodeTransport    Code = "transport_failed"
	CodeRejected     Code = "rejected"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeServer       Code = "server_error"
	CodeDecode       Code = "decode_failed"

	// Local errors
	CodeNotAuthenticated   Code = "not_authenticated"
	CodeInvalidTicket      Code = "invalid_ticket"
	CodeInvalidPriority    Code = "invalid_priority"
	CodeInvalidStatus      Code = "invalid_status"
	CodeInvalidType        Code = "invalid_type"
	CodeSessionStore       Code = "session_store_failed"
	CodeConfigurationError Code = "configuration_error"
)

// Error represents a structured error with a machine-readable code plus message.
//
// Detail carries the human-readable message reported by the backend, if any.
// Status is the HTTP status that produced the error, or 0 for local failures.
type Error struct {
	Code    Code
	Message string
	Detail  string
	Status  int
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// DetailOf returns the backend-reported message carried by err, if any.
func DetailOf(err error) string {
	var structured Error
	if errors.As(err, &structured) {
		return strings.TrimSpace(structured.Detail)
	}
	return ""
}

// UserMessage returns what should be shown to a person for err: the backend's
// message when one was reported, otherwise fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if detail := DetailOf(err); detail != "" {
		return detail
	}
	if IsCode(err, CodeNotAuthenticated) {
		return "Not logged in. Run `helpdesk login` first."
	}
	return fallback
}
