package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/config"
	"github.com/inkpost/inkpost-api/internal/platform/postgres"
	"github.com/inkpost/inkpost-api/internal/service"
	"github.com/inkpost/inkpost-api/internal/store"
)

// application holds the wired dependencies of the server: configuration,
// logger, stores, and one service per use case.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	postStore      store.PostStore
	authorStore    store.AuthorStore
	commenterStore store.CommenterStore

	addPost         *service.AddPostService
	getPost         *service.GetPostService
	updateTitle     *service.UpdateTitleService
	addComment      *service.AddCommentService
	tagPost         *service.TagPostService
	incrementViews  *service.IncrementViewCountService
	lockAuthor      *service.LockAuthorService
	createAuthor    *service.CreateAuthorService
	createCommenter *service.CreateCommenterService
}

// newApplication wires stores and services over the given database
// connection. Construction fails if any service rejects its dependencies.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	app.postStore = postgres.NewPostgresPostStore(db, log)
	app.authorStore = postgres.NewPostgresAuthorStore(db, log)
	app.commenterStore = postgres.NewPostgresCommenterStore(db, log)

	var err error
	if app.addPost, err = service.NewAddPostService(app.authorStore, app.postStore, log); err != nil {
		return nil, fmt.Errorf("failed to create add post service: %w", err)
	}
	if app.getPost, err = service.NewGetPostService(app.postStore, log); err != nil {
		return nil, fmt.Errorf("failed to create get post service: %w", err)
	}
	if app.updateTitle, err = service.NewUpdateTitleService(app.postStore, log); err != nil {
		return nil, fmt.Errorf("failed to create update title service: %w", err)
	}
	if app.addComment, err = service.NewAddCommentService(app.postStore, app.commenterStore, log); err != nil {
		return nil, fmt.Errorf("failed to create add comment service: %w", err)
	}
	if app.tagPost, err = service.NewTagPostService(app.postStore, log); err != nil {
		return nil, fmt.Errorf("failed to create tag post service: %w", err)
	}
	if app.incrementViews, err = service.NewIncrementViewCountService(app.postStore, log); err != nil {
		return nil, fmt.Errorf("failed to create increment view count service: %w", err)
	}
	if app.lockAuthor, err = service.NewLockAuthorService(app.authorStore, log); err != nil {
		return nil, fmt.Errorf("failed to create lock author service: %w", err)
	}
	if app.createAuthor, err = service.NewCreateAuthorService(app.authorStore, log); err != nil {
		return nil, fmt.Errorf("failed to create create author service: %w", err)
	}
	if app.createCommenter, err = service.NewCreateCommenterService(app.commenterStore, log); err != nil {
		return nil, fmt.Errorf("failed to create create commenter service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
