package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// TagPostService attaches a tag to a post. Tags are value objects held by
// the aggregate as a set: tagging a post with a name it already carries is
// a no-op.
type TagPostService struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewTagPostService creates a new TagPostService.
// It returns an error if the posts store is nil.
func NewTagPostService(posts store.PostStore, log *slog.Logger) (*TagPostService, error) {
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &TagPostService{
		posts:  posts,
		logger: log.With(slog.String("component", "tag_post_service")),
	}, nil
}

// TagPost adds the named tag to the post's tag set and persists the
// aggregate. Duplicate names leave the set unchanged, so the operation is
// idempotent.
// Returns domain.ErrEmptyTagName if the trimmed name is empty, and
// ErrPostNotFound if the post does not exist.
func (s *TagPostService) TagPost(ctx context.Context, postID int64, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := domain.NewTag(name)
	if err != nil {
		log.Debug("tag post rejected: invalid tag name",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("tag post rejected: unknown post",
				slog.Int64("post_id", postID))
			return ErrPostNotFound
		}
		log.Error("failed to load post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("tag_post", "failed to load post", err)
	}

	if !post.AddTag(tag) {
		log.Debug("tag already present",
			slog.Int64("post_id", postID),
			slog.String("tag", tag.Name))
		return nil
	}

	if err := s.posts.Update(ctx, post); err != nil {
		log.Error("failed to persist tags",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return wrapError("tag_post", "failed to persist post", err)
	}

	log.Info("post tagged",
		slog.Int64("post_id", postID),
		slog.String("tag", tag.Name))
	return nil
}
