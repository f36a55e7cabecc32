package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// CreateAuthorService registers a new author.
type CreateAuthorService struct {
	authors store.AuthorStore
	logger  *slog.Logger
}

// NewCreateAuthorService creates a new CreateAuthorService.
// It returns an error if the authors store is nil.
func NewCreateAuthorService(authors store.AuthorStore, log *slog.Logger) (*CreateAuthorService, error) {
	if authors == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "authors store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &CreateAuthorService{
		authors: authors,
		logger:  log.With(slog.String("component", "create_author_service")),
	}, nil
}

// CreateAuthor creates a new unlocked author and returns its identifier.
// Returns domain.ErrEmptyAuthorName if the trimmed name is empty.
func (s *CreateAuthorService) CreateAuthor(ctx context.Context, name string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := domain.NewAuthor(name)
	if err != nil {
		log.Debug("create author rejected",
			slog.String("error", err.Error()))
		return 0, err
	}

	if err := s.authors.Create(ctx, author); err != nil {
		log.Error("failed to create author",
			slog.String("error", err.Error()))
		return 0, wrapError("create_author", "failed to persist author", err)
	}

	log.Info("author created", slog.Int64("author_id", author.ID))
	return author.ID, nil
}
