package client

import (
	"fmt"
	"net/http"
)

// Severity grades an APIError for presentation purposes.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// APIError is the normalized error shape every failed call returns.
// UserMessage is safe to show to an end user; Message carries the
// server-provided detail.
type APIError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	UserMessage string `json:"userMessage"`
	Severity    string `json:"severity"`
	HTTPStatus  int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// normalizeError maps an HTTP status and server message onto the
// canonical error taxonomy.
func normalizeError(status int, serverMessage string) *APIError {
	e := &APIError{
		Message:    serverMessage,
		Severity:   SeverityError,
		HTTPStatus: status,
	}

	switch status {
	case http.StatusBadRequest:
		e.Code = "bad_request"
		e.UserMessage = "The request was invalid. Check the submitted values."
		e.Severity = SeverityWarning
	case http.StatusUnauthorized:
		e.Code = "unauthenticated"
		e.UserMessage = "Please sign in again."
	case http.StatusForbidden:
		e.Code = "forbidden"
		e.UserMessage = "You do not have access to this resource."
	case http.StatusNotFound:
		e.Code = "not_found"
		e.UserMessage = "The requested item was not found."
		e.Severity = SeverityWarning
	case http.StatusConflict:
		e.Code = "conflict"
		e.UserMessage = "The operation conflicts with the current state."
		e.Severity = SeverityWarning
	case http.StatusRequestEntityTooLarge:
		e.Code = "file_too_large"
		e.UserMessage = "The file exceeds the 50 MiB limit."
		e.Severity = SeverityWarning
	case http.StatusUnsupportedMediaType:
		e.Code = "unsupported_file_type"
		e.UserMessage = "This file format is not supported."
		e.Severity = SeverityWarning
	case http.StatusTooManyRequests:
		e.Code = "quota_exceeded"
		e.UserMessage = "You have reached your simulation quota."
		e.Severity = SeverityWarning
	default:
		e.Code = "internal"
		e.UserMessage = "Something went wrong. Please try again later."
	}

	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
