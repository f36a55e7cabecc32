package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// AddCommentService appends a comment to a post. Comments are owned by the
// post aggregate: they are created through the root and persisted together
// with it in one transaction.
type AddCommentService struct {
	posts      store.PostStore
	commenters store.CommenterStore
	logger     *slog.Logger
}

// NewAddCommentService creates a new AddCommentService.
// It returns an error if any of the required dependencies are nil.
func NewAddCommentService(
	posts store.PostStore,
	commenters store.CommenterStore,
	log *slog.Logger,
) (*AddCommentService, error) {
	if posts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "posts store cannot be nil"}
	}
	if commenters == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "commenters store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &AddCommentService{
		posts:      posts,
		commenters: commenters,
		logger:     log.With(slog.String("component", "add_comment_service")),
	}, nil
}

// AddComment appends a comment by the given commenter to the post and
// returns the new comment's identifier.
// Returns domain.ErrEmptyCommentText if the trimmed text is empty,
// ErrCommenterNotFound if the commenter id does not resolve, and
// ErrPostNotFound if the post does not exist.
func (s *AddCommentService) AddComment(
	ctx context.Context,
	postID int64,
	commenterID int64,
	text string,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		log.Debug("add comment rejected: empty text",
			slog.Int64("post_id", postID))
		return 0, domain.ErrEmptyCommentText
	}

	if _, err := s.commenters.GetByID(ctx, commenterID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("add comment rejected: unknown commenter",
				slog.Int64("commenter_id", commenterID))
			return 0, ErrCommenterNotFound
		}
		log.Error("failed to load commenter",
			slog.String("error", err.Error()),
			slog.Int64("commenter_id", commenterID))
		return 0, wrapError("add_comment", "failed to load commenter", err)
	}

	var commentID int64
	err := store.RunInTransaction(ctx, s.posts.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.posts.WithTx(tx)

		post, err := txPosts.GetByID(ctx, postID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return ErrPostNotFound
			}
			return wrapError("add_comment", "failed to load post", err)
		}

		comment := post.AddComment(commenterID, trimmed)

		if err := txPosts.Update(ctx, post); err != nil {
			return wrapError("add_comment", "failed to persist post", err)
		}

		// The store assigns the id on insert.
		commentID = comment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("comment added",
		slog.Int64("post_id", postID),
		slog.Int64("comment_id", commentID),
		slog.Int64("commenter_id", commenterID))
	return commentID, nil
}
