package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/service"
)

// CreatePostRequest represents the request body for creating a new post
type CreatePostRequest struct {
	AuthorID int64 `json:"author_id" validate:"required,gt=0"`
}

// UpdateTitleRequest represents the request body for changing a post's title.
// A null or absent title is treated as the empty string.
type UpdateTitleRequest struct {
	Title *string `json:"title"`
}

// AddCommentRequest represents the request body for commenting on a post
type AddCommentRequest struct {
	CommenterID int64  `json:"commenter_id" validate:"required,gt=0"`
	Text        string `json:"text"`
}

// TagPostRequest represents the request body for tagging a post
type TagPostRequest struct {
	Name string `json:"name"`
}

// CreatedResponse carries the identifier of a newly created entity
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// CommentResponse represents one comment of a post
type CommentResponse struct {
	ID          int64     `json:"id"`
	CommenterID int64     `json:"commenter_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostResponse represents the response data for a post aggregate
type PostResponse struct {
	ID           int64             `json:"id"`
	AuthorID     int64             `json:"author_id"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	ViewCount    int64             `json:"view_count"`
	CommentCount int               `json:"comment_count"`
	Comments     []CommentResponse `json:"comments"`
	Tags         []string          `json:"tags"`
	CreatedAt    time.Time         `json:"created_at"`
}

// PostHandler handles post-related HTTP requests. Each route delegates to
// exactly one domain service.
type PostHandler struct {
	addPost        *service.AddPostService
	getPost        *service.GetPostService
	updateTitle    *service.UpdateTitleService
	addComment     *service.AddCommentService
	tagPost        *service.TagPostService
	incrementViews *service.IncrementViewCountService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(
	addPost *service.AddPostService,
	getPost *service.GetPostService,
	updateTitle *service.UpdateTitleService,
	addComment *service.AddCommentService,
	tagPost *service.TagPostService,
	incrementViews *service.IncrementViewCountService,
) *PostHandler {
	return &PostHandler{
		addPost:        addPost,
		getPost:        getPost,
		updateTitle:    updateTitle,
		addComment:     addComment,
		tagPost:        tagPost,
		incrementViews: incrementViews,
	}
}

// CreatePost handles POST /api/posts requests
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "author_id is required")
		return
	}

	postID, err := h.addPost.AddPost(r.Context(), req.AuthorID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: postID})
}

// GetPost handles GET /api/posts/{id} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.getPost.GetPost(r.Context(), postID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// UpdateTitle handles PUT /api/posts/{id}/title requests
func (h *PostHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateTitleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Absent titles default to the empty string
	title := ""
	if req.Title != nil {
		title = *req.Title
	}

	if err := h.updateTitle.UpdateTitle(r.Context(), postID, title); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /api/posts/{id}/comments requests
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "commenter_id is required")
		return
	}

	commentID, err := h.addComment.AddComment(r.Context(), postID, req.CommenterID, req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: commentID})
}

// TagPost handles POST /api/posts/{id}/tags requests
func (h *PostHandler) TagPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req TagPostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.tagPost.TagPost(r.Context(), postID, req.Name); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IncrementViewCount handles POST /api/posts/{id}/views requests
func (h *PostHandler) IncrementViewCount(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.incrementViews.IncrementViewCount(r.Context(), postID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} URL parameter. On failure it writes a 400 response
// and returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// postToResponse converts a domain.Post to a PostResponse
func postToResponse(post *domain.Post) PostResponse {
	comments := make([]CommentResponse, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, CommentResponse{
			ID:          c.ID,
			CommenterID: c.CommenterID,
			Text:        c.Text,
			CreatedAt:   c.CreatedAt,
		})
	}

	tags := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		tags = append(tags, t.Name)
	}

	return PostResponse{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		Title:        post.Title,
		Content:      post.Content,
		ViewCount:    post.ViewCount,
		CommentCount: post.CommentCount(),
		Comments:     comments,
		Tags:         tags,
		CreatedAt:    post.CreatedAt,
	}
}
