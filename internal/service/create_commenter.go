package service

import (
	"context"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// CreateCommenterService registers a new commenter.
type CreateCommenterService struct {
	commenters store.CommenterStore
	logger     *slog.Logger
}

// NewCreateCommenterService creates a new CreateCommenterService.
// It returns an error if the commenters store is nil.
func NewCreateCommenterService(
	commenters store.CommenterStore,
	log *slog.Logger,
) (*CreateCommenterService, error) {
	if commenters == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "commenters store cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &CreateCommenterService{
		commenters: commenters,
		logger:     log.With(slog.String("component", "create_commenter_service")),
	}, nil
}

// CreateCommenter creates a new commenter and returns its identifier.
// Returns domain.ErrEmptyCommenterName if the trimmed name is empty.
func (s *CreateCommenterService) CreateCommenter(ctx context.Context, name string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	commenter, err := domain.NewCommenter(name)
	if err != nil {
		log.Debug("create commenter rejected",
			slog.String("error", err.Error()))
		return 0, err
	}

	if err := s.commenters.Create(ctx, commenter); err != nil {
		log.Error("failed to create commenter",
			slog.String("error", err.Error()))
		return 0, wrapError("create_commenter", "failed to persist commenter", err)
	}

	log.Info("commenter created", slog.Int64("commenter_id", commenter.ID))
	return commenter.ID, nil
}
