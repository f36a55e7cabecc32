package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/inkpost/inkpost-api/internal/api"
	apiMiddleware "github.com/inkpost/inkpost-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authorHandler := api.NewAuthorHandler(app.createAuthor, app.lockAuthor)
	commenterHandler := api.NewCommenterHandler(app.createCommenter)
	postHandler := api.NewPostHandler(
		app.addPost,
		app.getPost,
		app.updateTitle,
		app.addComment,
		app.tagPost,
		app.incrementViews,
	)

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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
