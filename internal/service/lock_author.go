package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// LockAuthorService locks an author. Locking gates future post creation
// only; posts the author already owns are unaffected.
type LockAuthorService struct {
	authors store.AuthorStore
	logger  *slog.Logger
}

// NewLockAuthorService creates a new LockAuthorService.
// It returns an error if the authors store is nil.
func NewLockAuthorService(authors store.AuthorStore, log *slog.Logger) (*LockAuthorService, error) {
	if authors == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "authors store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &LockAuthorService{
		authors: authors,
		logger:  log.With(slog.String("component", "lock_author_service")),
	}, nil
}

// LockAuthor marks the author as locked and persists the change. Locking an
// already-locked author is idempotent.
// Returns ErrAuthorNotFound if the author id does not resolve.
func (s *LockAuthorService) LockAuthor(ctx context.Context, authorID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("lock author rejected: unknown author",
				slog.Int64("author_id", authorID))
			return ErrAuthorNotFound
		}
		log.Error("failed to load author",
			slog.String("error", err.Error()),
			slog.Int64("author_id", authorID))
		return wrapError("lock_author", "failed to load author", err)
	}

	author.Lock()

	if err := s.authors.Update(ctx, author); err != nil {
		log.Error("failed to persist author lock",
			slog.String("error", err.Error()),
			slog.Int64("author_id", authorID))
		return wrapError("lock_author", "failed to persist author", err)
	}

	log.Info("author locked", slog.Int64("author_id", authorID))
	return nil
}
