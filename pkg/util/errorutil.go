package util

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeInternal is the opaque code clients receive for any server-side
// failure. The underlying error is logged, never returned.
const CodeInternal = "internalServerError"

// FieldInternal keys internal errors in the response body.
const FieldInternal = "type"

// DomainError standardizes application errors. Field names the request
// field (or "type" for non-field errors) and Code is a dotted,
// machine-readable string meant for client-side i18n lookup.
type DomainError struct {
	Field      string
	Code       string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(field, code string, status int) *DomainError {
	return &DomainError{Field: field, Code: code, HTTPStatus: status}
}

// NewValidation flags a malformed or missing request field.
func NewValidation(field, code string) error {
	return NewDomainError(field, code, http.StatusBadRequest)
}

// NewNotFound covers both absent records and duplicate-email conflicts;
// the upstream contract uses 404 for both.
func NewNotFound(field, code string) error {
	return NewDomainError(field, code, http.StatusNotFound)
}

// NewUnauthorized flags rejected credentials or tokens.
func NewUnauthorized(field, code string) error {
	return NewDomainError(field, code, http.StatusUnauthorized)
}

// NewForbidden flags an authenticated caller without the required role.
func NewForbidden(field, code string) error {
	return NewDomainError(field, code, http.StatusForbidden)
}

// NewInternalError wraps a server-side failure behind the opaque code.
func NewInternalError(err error) error {
	return &DomainError{
		Field:      FieldInternal,
		Code:       CodeInternal,
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
		Field:      FieldInternal,
		Code:       CodeInternal,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
