package store

import (
	"context"
	"database/sql"

	"github.com/inkpost/inkpost-api/internal/domain"
)

// PostStore defines the interface for post aggregate persistence.
// Implementations perform no business validation; all domain rules live in
// the service layer.
type PostStore interface {
	// CreatePost allocates a new identity and persists an empty Post shell
	// bound to the given author. Identity generation is an infrastructure
	// concern of the implementation.
	// Returns ErrInvalidEntity if the author reference does not resolve at
	// the storage level.
	CreatePost(ctx context.Context, authorID int64) (int64, error)

	// GetByID retrieves a post by its unique ID, including its owned
	// comments (ordered by creation) and tags.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// Update persists changes to an existing post aggregate: scalar fields,
	// the tag set, and any comments appended since the aggregate was loaded.
	// Newly appended comments (ID zero) get their IDs assigned in place.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// WithTx returns a new PostStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service via RunInTransaction).
	WithTx(tx *sql.Tx) PostStore

	// DB returns the underlying database connection for transaction
	// management by services.
	DB() *sql.DB
}
