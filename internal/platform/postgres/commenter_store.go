package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// PostgresCommenterStore implements the store.CommenterStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommenterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommenterStore creates a new PostgreSQL implementation of the
// CommenterStore interface. If logger is nil, a default logger will be used.
func NewPostgresCommenterStore(db *sql.DB, log *slog.Logger) *PostgresCommenterStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCommenterStore{
		db:     db,
		logger: log.With(slog.String("component", "commenter_store")),
	}
}

// Ensure PostgresCommenterStore implements store.CommenterStore interface
var _ store.CommenterStore = (*PostgresCommenterStore)(nil)

// Create implements store.CommenterStore.Create
// It saves a new commenter, assigning the database-allocated ID in place.
func (s *PostgresCommenterStore) Create(ctx context.Context, commenter *domain.Commenter) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO commenters (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		commenter.Name,
		commenter.CreatedAt,
	).Scan(&commenter.ID)
	if err != nil {
		log.Error("failed to create commenter",
			slog.String("error", err.Error()),
			slog.String("name", commenter.Name))
		return MapError(err)
	}

	log.Debug("commenter created", slog.Int64("commenter_id", commenter.ID))
	return nil
}

// GetByID implements store.CommenterStore.GetByID
// Returns store.ErrCommenterNotFound if the commenter does not exist.
func (s *PostgresCommenterStore) GetByID(ctx context.Context, id int64) (*domain.Commenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at
		FROM commenters
		WHERE id = $1
	`

	commenter := &domain.Commenter{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&commenter.ID,
		&commenter.Name,
		&commenter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("commenter not found", slog.Int64("commenter_id", id))
			return nil, store.ErrCommenterNotFound
		}
		log.Error("failed to get commenter",
			slog.String("error", err.Error()),
			slog.Int64("commenter_id", id))
		return nil, MapError(err)
	}

	return commenter, nil
}
