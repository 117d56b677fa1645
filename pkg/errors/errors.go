// Package errors provides structured error types for the graphml CLI and
// HTTP server.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes in HTTP responses
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// The encoder in pkg/graphml does not use these types; it returns plain
// wrapped errors. Codes are attached at the command and request boundary.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND / FILE_NOT_FOUND: Resource not found
//   - SINK_FAILURE: The output could not be written
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidExporter, "unknown exporter: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidExporter) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSinkFailure, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/matzehuels/graphml/pkg/graph"
	gio "github.com/matzehuels/graphml/pkg/io"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidExporter Code = "INVALID_EXPORTER"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeSinkFailure Code = "SINK_FAILURE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// Classify wraps an error returned while loading a graph with the matching
// code. Errors that already carry a code are returned unchanged.
func Classify(err error, format string, args ...any) error {
	if err == nil || GetCode(err) != "" {
		return err
	}
	code := ErrCodeInternal
	switch {
	case errors.Is(err, os.ErrNotExist):
		code = ErrCodeFileNotFound
	case errors.Is(err, gio.ErrUnsupportedFormat):
		code = ErrCodeInvalidFormat
	case errors.Is(err, gio.ErrUnknownExporter):
		code = ErrCodeInvalidExporter
	case errors.Is(err, gio.ErrMalformed),
		errors.Is(err, gio.ErrInvalidNodeID),
		errors.Is(err, gio.ErrDuplicateNodeID),
		errors.Is(err, graph.ErrUnknownSourceNode),
		errors.Is(err, graph.ErrUnknownTargetNode):
		code = ErrCodeInvalidInput
	}
	return Wrap(code, err, format, args...)
}

// HTTPStatus maps an error to an HTTP status code.
// Errors without a code map to 500.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidExporter, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
