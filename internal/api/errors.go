package api

import (
	"errors"
	"net/http"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/service"
)

// MapErrorToStatusCode maps service errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
//
//   - invalid reference / validation → 422
//   - invalid state → 409
//   - not found → 404
//   - anything else (infrastructure) → 500
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound

	// Invalid state errors
	case errors.Is(err, service.ErrAuthorLocked):
		return http.StatusConflict

	// Invalid reference errors
	case errors.Is(err, service.ErrAuthorNotFound),
		errors.Is(err, service.ErrCommenterNotFound):
		return http.StatusUnprocessableEntity

	// Domain validation errors
	case errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrEmptyAuthorName),
		errors.Is(err, domain.ErrEmptyCommenterName),
		errors.Is(err, domain.ErrEmptyCommentText),
		errors.Is(err, domain.ErrEmptyTagName):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, service.ErrAuthorNotFound):
		return "Author Id not found"

	case errors.Is(err, service.ErrCommenterNotFound):
		return "Commenter Id not found"

	case errors.Is(err, service.ErrAuthorLocked):
		return "Author is locked"

	case errors.Is(err, domain.ErrTitleTooLong):
		return "Title max is 90 letters"

	case errors.Is(err, domain.ErrEmptyAuthorName):
		return "Author name cannot be empty"

	case errors.Is(err, domain.ErrEmptyCommenterName):
		return "Commenter name cannot be empty"

	case errors.Is(err, domain.ErrEmptyCommentText):
		return "Comment text cannot be empty"

	case errors.Is(err, domain.ErrEmptyTagName):
		return "Tag name cannot be empty"

	default:
		return "An unexpected error occurred"
	}
}
