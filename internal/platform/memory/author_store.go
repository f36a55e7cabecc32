package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/store"
)

// AuthorStore is an in-memory implementation of store.AuthorStore.
type AuthorStore struct {
	mu      sync.Mutex
	authors map[int64]*domain.Author
	nextID  int64
}

// NewAuthorStore creates an empty in-memory author store.
func NewAuthorStore() *AuthorStore {
	return &AuthorStore{
		authors: make(map[int64]*domain.Author),
		nextID:  1,
	}
}

// Ensure AuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*AuthorStore)(nil)

// WithTx implements store.AuthorStore.WithTx. The in-memory store has no
// transaction isolation, so the same store is returned.
func (s *AuthorStore) WithTx(*sql.Tx) store.AuthorStore {
	return s
}

// Create implements store.AuthorStore.Create.
func (s *AuthorStore) Create(_ context.Context, author *domain.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	author.ID = s.nextID
	s.nextID++

	clone := *author
	s.authors[author.ID] = &clone
	return nil
}

// GetByID implements store.AuthorStore.GetByID.
func (s *AuthorStore) GetByID(_ context.Context, id int64) (*domain.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	clone := *author
	return &clone, nil
}

// Update implements store.AuthorStore.Update.
func (s *AuthorStore) Update(_ context.Context, author *domain.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[author.ID]; !ok {
		return store.ErrAuthorNotFound
	}
	clone := *author
	s.authors[author.ID] = &clone
	return nil
}
