package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// UpdateTitleService changes a post's title. An absent title is represented
// as the empty string by the transport; titles are trimmed before the length
// invariant is checked.
type UpdateTitleService struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewUpdateTitleService creates a new UpdateTitleService.
// It returns an error if the posts store is nil.
func NewUpdateTitleService(posts store.PostStore, log *slog.Logger) (*UpdateTitleService, error) {
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &UpdateTitleService{
		posts:  posts,
		logger: log.With(slog.String("component", "update_title_service")),
	}, nil
}

// UpdateTitle sets the post's title to the trimmed value and persists it.
// The length check happens before the post is loaded since it does not
// depend on post state. The operation is idempotent.
// Returns domain.ErrTitleTooLong if the trimmed title exceeds
// domain.MaxTitleLength, and ErrPostNotFound if the post does not exist.
func (s *UpdateTitleService) UpdateTitle(ctx context.Context, postID int64, title string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	trimmed, err := domain.NormalizeTitle(title)
	if err != nil {
		log.Debug("update title rejected: invalid title",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("update title rejected: unknown post",
				slog.Int64("post_id", postID))
			return ErrPostNotFound
		}
		log.Error("failed to load post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("update_title", "failed to load post", err)
	}

	post.SetTitle(trimmed)

	if err := s.posts.Update(ctx, post); err != nil {
		log.Error("failed to persist title",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("update_title", "failed to persist post", err)
	}

	log.Info("post title updated", slog.Int64("post_id", postID))
	return nil
}
