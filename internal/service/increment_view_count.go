package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// IncrementViewCountService bumps a post's view counter.
type IncrementViewCountService struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewIncrementViewCountService creates a new IncrementViewCountService.
// It returns an error if the posts store is nil.
func NewIncrementViewCountService(
	posts store.PostStore,
	log *slog.Logger,
) (*IncrementViewCountService, error) {
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &IncrementViewCountService{
		posts:  posts,
		logger: log.With(slog.String("component", "increment_view_count_service")),
	}, nil
}

// IncrementViewCount increases the post's view counter by one and persists it.
// Returns ErrPostNotFound if the post does not exist.
func (s *IncrementViewCountService) IncrementViewCount(ctx context.Context, postID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return ErrPostNotFound
		}
		log.Error("failed to load post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("increment_view_count", "failed to load post", err)
	}

	post.IncrementViewCount()

	if err := s.posts.Update(ctx, post); err != nil {
		log.Error("failed to persist view count",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("increment_view_count", "failed to persist post", err)
	}

	return nil
}
