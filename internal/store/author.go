package store

import (
	"context"
	"database/sql"

	"github.com/inkpost/inkpost-api/internal/domain"
)

// AuthorStore defines the interface for author persistence.
type AuthorStore interface {
	// Create saves a new author to the store, assigning its ID in place.
	Create(ctx context.Context, author *domain.Author) error

	// GetByID retrieves an author by its unique ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Author, error)

	// Update persists changes to an existing author (name, lock flag).
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, author *domain.Author) error

	// WithTx returns a new AuthorStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) AuthorStore
}
