package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewUpstreamError marks a transport or authorization failure from the
// tracker API. Fatal for a pipeline run.
func NewUpstreamError(status int, body string) error {
	return &DomainError{
		Code:       "UPSTREAM_FAILED",
		Message:    fmt.Sprintf("tracker API request failed with status %d", status),
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"body": body},
	}
}

// NewUpstreamQueryError marks a query error reported inside an otherwise
// successful tracker response. Fatal for a pipeline run.
func NewUpstreamQueryError(messages []string) error {
	return &DomainError{
		Code:       "UPSTREAM_QUERY_FAILED",
		Message:    "tracker API reported query errors",
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"errors": messages},
	}
}

// NewSnapshotUnavailable signals that no pipeline run has published a
// dataset snapshot yet.
func NewSnapshotUnavailable(err error) error {
	return &DomainError{
		Code:       "SNAPSHOT_UNAVAILABLE",
		Message:    "no dataset snapshot available; run the pipeline first",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
