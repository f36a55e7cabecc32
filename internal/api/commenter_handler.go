package api

import (
	"net/http"

	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/service"
)

// CreateCommenterRequest represents the request body for registering a commenter
type CreateCommenterRequest struct {
	Name string `json:"name"`
}

// CommenterHandler handles commenter-related HTTP requests
type CommenterHandler struct {
	createCommenter *service.CreateCommenterService
}

// NewCommenterHandler creates a new CommenterHandler.
func NewCommenterHandler(createCommenter *service.CreateCommenterService) *CommenterHandler {
	return &CommenterHandler{
		createCommenter: createCommenter,
	}
}

// CreateCommenter handles POST /api/commenters requests
func (h *CommenterHandler) CreateCommenter(w http.ResponseWriter, r *http.Request) {
	var req CreateCommenterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	commenterID, err := h.createCommenter.CreateCommenter(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: commenterID})
}
