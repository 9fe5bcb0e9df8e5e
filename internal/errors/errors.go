// Package errors provides shared error types for the Wikipedia and page-view clients.
package errors

import (
	stderrors "errors"
	"fmt"
)

// TransportError indicates the HTTP call could not complete: a network failure
// or a non-2xx status. It is never retried.
type TransportError struct {
	URL        string
	StatusCode int   // 0 when no response was received
	Err        error // underlying network error, if any
	Body       string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response body was not valid JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a requested title does not exist on the wiki.
type NotFoundError struct {
	Language string
	Title    string
}

func (e *NotFoundError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("page not found on %s.wikipedia: %s", e.Language, e.Title)
	}
	return fmt.Sprintf("page not found: %s", e.Title)
}

// NewNotFoundError creates a NotFoundError for a page lookup.
func NewNotFoundError(language, title string) *NotFoundError {
	return &NotFoundError{Language: language, Title: title}
}

// LanguageNotSupportedError reports that an article has no inter-language
// link to the requested target language. This is an expected outcome.
type LanguageNotSupportedError struct {
	Title          string
	SourceLanguage string
	TargetLanguage string
}

func (e *LanguageNotSupportedError) Error() string {
	return fmt.Sprintf("no %s version of %s.wikipedia article %q", e.TargetLanguage, e.SourceLanguage, e.Title)
}

// UnexpectedResponseShapeError indicates an expected path was absent or had the wrong type.
type UnexpectedResponseShapeError struct {
	Path string
}

func (e *UnexpectedResponseShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: missing or invalid %q", e.Path)
}

// APIError is an error object returned in an otherwise successful API response.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error [%s]: %s", e.Code, e.Info)
}

// PaginationLimitError indicates the server kept sending continuation tokens
// past the configured page cap.
type PaginationLimitError struct {
	MaxPages int
}

func (e *PaginationLimitError) Error() string {
	return fmt.Sprintf("pagination aborted after %d pages: server kept returning continuation tokens", e.MaxPages)
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsTransport returns true if err is or wraps a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return stderrors.As(err, &target)
}

// IsDecode returns true if err is or wraps a DecodeError.
func IsDecode(err error) bool {
	var target *DecodeError
	return stderrors.As(err, &target)
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsLanguageNotSupported returns true if err is or wraps a LanguageNotSupportedError.
func IsLanguageNotSupported(err error) bool {
	var target *LanguageNotSupportedError
	return stderrors.As(err, &target)
}

// IsUnexpectedShape returns true if err is or wraps an UnexpectedResponseShapeError.
func IsUnexpectedShape(err error) bool {
	var target *UnexpectedResponseShapeError
	return stderrors.As(err, &target)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// Code returns a short, stable label for err, suitable for metrics.
func Code(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case IsTransport(err):
		return "transport"
	case IsDecode(err):
		return "decode"
	case IsNotFound(err):
		return "not_found"
	case IsLanguageNotSupported(err):
		return "language_not_supported"
	case IsUnexpectedShape(err):
		return "unexpected_shape"
	case IsValidation(err):
		return "validation"
	case stderrors.As(err, &apiErr):
		return apiErr.Code
	default:
		return "other"
	}
}
