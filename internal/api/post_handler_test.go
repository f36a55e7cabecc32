package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/memory"
	"github.com/inkpost/inkpost-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the API over fresh in-memory stores, mirroring the
// server's route table.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := slog.Default()
	posts := memory.NewPostStore()
	authors := memory.NewAuthorStore()
	commenters := memory.NewCommenterStore()

	addPost, err := service.NewAddPostService(authors, posts, logger)
	require.NoError(t, err)
	getPost, err := service.NewGetPostService(posts, logger)
	require.NoError(t, err)
	updateTitle, err := service.NewUpdateTitleService(posts, logger)
	require.NoError(t, err)
	addComment, err := service.NewAddCommentService(posts, commenters, logger)
	require.NoError(t, err)
	tagPost, err := service.NewTagPostService(posts, logger)
	require.NoError(t, err)
	incrementViews, err := service.NewIncrementViewCountService(posts, logger)
	require.NoError(t, err)
	lockAuthor, err := service.NewLockAuthorService(authors, logger)
	require.NoError(t, err)
	createAuthor, err := service.NewCreateAuthorService(authors, logger)
	require.NoError(t, err)
	createCommenter, err := service.NewCreateCommenterService(commenters, logger)
	require.NoError(t, err)

	authorHandler := NewAuthorHandler(createAuthor, lockAuthor)
	commenterHandler := NewCommenterHandler(createCommenter)
	postHandler := NewPostHandler(addPost, getPost, updateTitle, addComment, tagPost, incrementViews)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/authors", authorHandler.CreateAuthor)
		r.Post("/authors/{id}/lock", authorHandler.LockAuthor)
		r.Post("/commenters", commenterHandler.CreateCommenter)
		r.Post("/posts", postHandler.CreatePost)
		r.Get("/posts/{id}", postHandler.GetPost)
		r.Put("/posts/{id}/title", postHandler.UpdateTitle)
		r.Post("/posts/{id}/comments", postHandler.AddComment)
		r.Post("/posts/{id}/tags", postHandler.TagPost)
		r.Post("/posts/{id}/views", postHandler.IncrementViewCount)
	})
	return r
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// createdID decodes a CreatedResponse body.
func createdID(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()

	var resp CreatedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.ID
}

func TestPostEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// Register an author and create a post for it
	w := doJSON(t, r, http.MethodPost, "/api/authors", `{"name":"Ada Lovelace"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	authorID := createdID(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/posts", fmt.Sprintf(`{"author_id":%d}`, authorID))
	require.Equal(t, http.StatusCreated, w.Code)
	postID := createdID(t, w)

	t.Run("new post is an empty shell", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp PostResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "", resp.Title)
		assert.Equal(t, authorID, resp.AuthorID)
		assert.Equal(t, 0, resp.CommentCount)
	})

	t.Run("title update trims whitespace", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/posts/%d/title", postID),
			`{"title":"  Hello World  "}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "")
		var resp PostResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Hello World", resp.Title)
	})

	t.Run("null title becomes empty string", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/posts/%d/title", postID),
			`{"title":null}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "")
		var resp PostResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "", resp.Title)
	})

	t.Run("too long title is unprocessable", func(t *testing.T) {
		long := strings.Repeat("x", domain.MaxTitleLength+1)
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/posts/%d/title", postID),
			fmt.Sprintf(`{"title":%q}`, long))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Title max is 90 letters")
	})

	t.Run("title update on unknown post is not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/posts/999/title", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("comments and tags round-trip through the aggregate", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/commenters", `{"name":"Casey"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		commenterID := createdID(t, w)

		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID),
			fmt.Sprintf(`{"commenter_id":%d,"text":"first!"}`, commenterID))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotZero(t, createdID(t, w))

		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/tags", postID),
			`{"name":"golang"}`)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/views", postID), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "")
		var resp PostResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 1, resp.CommentCount)
		assert.Equal(t, []string{"golang"}, resp.Tags)
		assert.Equal(t, int64(1), resp.ViewCount)
	})

	t.Run("comment for unknown commenter is unprocessable", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID),
			`{"commenter_id":404,"text":"hello"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Commenter Id not found")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/posts", `{"author_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/posts/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/authors", `{"name":"Grace Hopper"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	authorID := createdID(t, w)

	t.Run("empty author name is unprocessable", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/authors", `{"name":"   "}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("post for unknown author is unprocessable", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/posts", `{"author_id":404}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Author Id not found")
	})

	t.Run("locked author conflicts on new posts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/authors/%d/lock", authorID), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, http.MethodPost, "/api/posts", fmt.Sprintf(`{"author_id":%d}`, authorID))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Author is locked")
	})

	t.Run("locking unknown author is unprocessable", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/authors/404/lock", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
