package memory

import (
	"context"
	"sync"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/store"
)

// CommenterStore is an in-memory implementation of store.CommenterStore.
type CommenterStore struct {
	mu         sync.Mutex
	commenters map[int64]*domain.Commenter
	nextID     int64
}

// NewCommenterStore creates an empty in-memory commenter store.
func NewCommenterStore() *CommenterStore {
	return &CommenterStore{
		commenters: make(map[int64]*domain.Commenter),
		nextID:     1,
	}
}

// Ensure CommenterStore implements store.CommenterStore interface
var _ store.CommenterStore = (*CommenterStore)(nil)

// Create implements store.CommenterStore.Create.
func (s *CommenterStore) Create(_ context.Context, commenter *domain.Commenter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	commenter.ID = s.nextID
	s.nextID++

	clone := *commenter
	s.commenters[commenter.ID] = &clone
	return nil
}

// GetByID implements store.CommenterStore.GetByID.
func (s *CommenterStore) GetByID(_ context.Context, id int64) (*domain.Commenter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	commenter, ok := s.commenters[id]
	if !ok {
		return nil, store.ErrCommenterNotFound
	}
	clone := *commenter
	return &clone, nil
}
