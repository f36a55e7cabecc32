package store

import (
	"context"

	"github.com/inkpost/inkpost-api/internal/domain"
)

// CommenterStore defines the interface for commenter persistence.
type CommenterStore interface {
	// Create saves a new commenter to the store, assigning its ID in place.
	Create(ctx context.Context, commenter *domain.Commenter) error

	// GetByID retrieves a commenter by its unique ID.
	// Returns ErrCommenterNotFound if the commenter does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Commenter, error)
}
