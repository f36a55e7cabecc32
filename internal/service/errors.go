// Package service implements the domain use cases of the blog platform.
// Each use case is a single type with a single public operation; validation
// and invariant checks happen here, never in the stores.
package service

import (
	"errors"
	"fmt"

	"github.com/inkpost/inkpost-api/internal/store"
)

// Sentinel errors returned by the domain services. The transport boundary
// distinguishes these to pick a response; they form the error taxonomy of
// the core:
//
//   - invalid reference: a referenced entity id does not resolve
//   - invalid state: the entity exists but forbids the operation
//   - validation: a supplied field fails a domain constraint (see domain pkg)
//   - not found: the primary target of the operation does not exist
//
// Anything else that surfaces from a service is an infrastructure failure
// wrapped in a ServiceError.
var (
	// ErrAuthorNotFound indicates the referenced author id does not resolve.
	ErrAuthorNotFound = errors.New("author id not found")

	// ErrAuthorLocked indicates the author exists but is locked, which
	// forbids creating new posts on its behalf.
	ErrAuthorLocked = errors.New("author is locked")

	// ErrPostNotFound indicates the targeted post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrCommenterNotFound indicates the referenced commenter id does not resolve.
	ErrCommenterNotFound = errors.New("commenter id not found")
)

// ServiceError wraps infrastructure errors from the services with context.
type ServiceError struct {
	// Operation is the use case that failed (e.g., "add_post", "update_title")
	Operation string
	// Message is a human-readable description of the failure
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError classifies an error crossing the service boundary. Service and
// domain sentinels pass through unchanged so callers can match on them;
// store-level "not found" sentinels are translated to their service
// equivalents; everything else is an infrastructure failure and is wrapped
// with operation context, never swallowed.
func wrapError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrAuthorLocked),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCommenterNotFound):
		return err
	case errors.Is(err, store.ErrAuthorNotFound):
		return ErrAuthorNotFound
	case errors.Is(err, store.ErrPostNotFound):
		return ErrPostNotFound
	case errors.Is(err, store.ErrCommenterNotFound):
		return ErrCommenterNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
