// Package api implements the HTTP transport boundary: handlers decode
// requests, invoke exactly one domain service, and map typed failures to
// status codes.
package api

import (
	"net/http"

	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/service"
)

// CreateAuthorRequest represents the request body for registering an author
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// AuthorHandler handles author-related HTTP requests
type AuthorHandler struct {
	createAuthor *service.CreateAuthorService
	lockAuthor   *service.LockAuthorService
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(
	createAuthor *service.CreateAuthorService,
	lockAuthor *service.LockAuthorService,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthor: createAuthor,
		lockAuthor:   lockAuthor,
	}
}

// CreateAuthor handles POST /api/authors requests
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req CreateAuthorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	authorID, err := h.createAuthor.CreateAuthor(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: authorID})
}

// LockAuthor handles POST /api/authors/{id}/lock requests
func (h *AuthorHandler) LockAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.lockAuthor.LockAuthor(r.Context(), authorID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
