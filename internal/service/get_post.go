package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// GetPostService is the read side for the transport boundary: it loads the
// full post aggregate, comments and tags included.
type GetPostService struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewGetPostService creates a new GetPostService.
// It returns an error if the posts store is nil.
func NewGetPostService(posts store.PostStore, log *slog.Logger) (*GetPostService, error) {
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &GetPostService{
		posts:  posts,
		logger: log.With(slog.String("component", "get_post_service")),
	}, nil
}

// GetPost retrieves a post aggregate by id.
// Returns ErrPostNotFound if the post does not exist.
func (s *GetPostService) GetPost(ctx context.Context, postID int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrPostNotFound
		}
		log.Error("failed to load post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, wrapError("get_post", "failed to load post", err)
	}

	return post, nil
}
