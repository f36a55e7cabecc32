package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// AddPostService creates new posts. A post can only be created for an
// existing, unlocked author; the new post starts as an empty shell whose
// identity is allocated by the store.
type AddPostService struct {
	authors store.AuthorStore
	posts   store.PostStore
	logger  *slog.Logger
}

// NewAddPostService creates a new AddPostService.
// It returns an error if any of the required dependencies are nil.
func NewAddPostService(
	authors store.AuthorStore,
	posts store.PostStore,
	log *slog.Logger,
) (*AddPostService, error) {
	if authors == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "authors store cannot be nil"}
	}
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &AddPostService{
		authors: authors,
		posts:   posts,
		logger:  log.With(slog.String("component", "add_post_service")),
	}, nil
}

// AddPost creates a new empty post bound to the given author and returns its
// identifier.
// Returns ErrAuthorNotFound if the author id does not resolve, and
// ErrAuthorLocked if the author exists but is locked.
func (s *AddPostService) AddPost(ctx context.Context, authorID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("add post rejected: unknown author",
				slog.Int64("author_id", authorID))
			return 0, ErrAuthorNotFound
		}
		log.Error("failed to load author",
			slog.String("error", err.Error()),
			slog.Int64("author_id", authorID))
		return 0, wrapError("add_post", "failed to load author", err)
	}

	if author.IsLocked {
		log.Debug("add post rejected: author is locked",
			slog.Int64("author_id", authorID))
		return 0, ErrAuthorLocked
	}

	postID, err := s.posts.CreatePost(ctx, authorID)
	if err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("author_id", authorID))
		return 0, wrapError("add_post", "failed to create post", err)
	}

	log.Info("post created",
		slog.Int64("post_id", postID),
		slog.Int64("author_id", authorID))
	return postID, nil
}
