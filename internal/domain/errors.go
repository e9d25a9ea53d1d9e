package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable machine-readable code carried by every domain error.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindNotFound     ErrorKind = "RESOURCE_NOT_FOUND"
	KindDuplicate    ErrorKind = "DUPLICATE_RESOURCE"
	KindIllegalState ErrorKind = "BUSINESS_RULE_VIOLATION"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindInternal     ErrorKind = "INTERNAL_ERROR"
)

// Error is the single error type produced by the domain layer. Callers
// dispatch on Kind, never on concrete type identity.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError reports a malformed input on a named field.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewNotFoundError reports a missing aggregate by integer identity.
func NewNotFoundError(resource string, id int64) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found with id %d", resource, id)}
}

// NewNotFoundByError reports a missing aggregate by a non-id identifier.
func NewNotFoundByError(resource, identifier string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, identifier)}
}

// NewDuplicateError reports a uniqueness violation.
func NewDuplicateError(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// NewIllegalStateError reports a state-machine violation.
func NewIllegalStateError(message string) *Error {
	return &Error{Kind: KindIllegalState, Message: message}
}

// KindOf extracts the error kind, returning KindInternal for anything that is
// not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
