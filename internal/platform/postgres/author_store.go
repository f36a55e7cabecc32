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

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the
// AuthorStore interface. If logger is nil, a default logger will be used.
func NewPostgresAuthorStore(db *sql.DB, log *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAuthorStore{
		db:     db,
		logger: log.With(slog.String("component", "author_store")),
	}
}

// Ensure PostgresAuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// WithTx implements store.AuthorStore.WithTx
func (s *PostgresAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return &PostgresAuthorStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AuthorStore.Create
// It saves a new author, assigning the database-allocated ID in place.
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO authors (name, is_locked, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		author.Name,
		author.IsLocked,
		author.CreatedAt,
	).Scan(&author.ID)
	if err != nil {
		log.Error("failed to create author",
			slog.String("error", err.Error()),
			slog.String("name", author.Name))
		return MapError(err)
	}

	log.Debug("author created", slog.Int64("author_id", author.ID))
	return nil
}

// GetByID implements store.AuthorStore.GetByID
// Returns store.ErrAuthorNotFound if the author does not exist.
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, is_locked, created_at
		FROM authors
		WHERE id = $1
	`

	author := &domain.Author{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.IsLocked,
		&author.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("author not found", slog.Int64("author_id", id))
			return nil, store.ErrAuthorNotFound
		}
		log.Error("failed to get author",
			slog.String("error", err.Error()),
			slog.Int64("author_id", id))
		return nil, MapError(err)
	}

	return author, nil
}

// Update implements store.AuthorStore.Update
// Returns store.ErrAuthorNotFound if the author does not exist.
func (s *PostgresAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE authors
		SET name = $2, is_locked = $3
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, author.ID, author.Name, author.IsLocked)
	if err != nil {
		log.Error("failed to update author",
			slog.String("error", err.Error()),
			slog.Int64("author_id", author.ID))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		log.Debug("author not found during update", slog.Int64("author_id", author.ID))
		return store.ErrAuthorNotFound
	}

	log.Debug("author updated",
		slog.Int64("author_id", author.ID),
		slog.Bool("is_locked", author.IsLocked))
	return nil
}
