package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/store"
)

// PostStore is an in-memory implementation of store.PostStore.
// It is safe for concurrent use; aggregates are deep-copied on the way in
// and out so callers never share state with the store.
type PostStore struct {
	mu            sync.Mutex
	db            *sql.DB
	posts         map[int64]*domain.Post
	nextPostID    int64
	nextCommentID int64
}

// NewPostStore creates an empty in-memory post store.
func NewPostStore() *PostStore {
	return &PostStore{
		db:            newNopDB(),
		posts:         make(map[int64]*domain.Post),
		nextPostID:    1,
		nextCommentID: 1,
	}
}

// Ensure PostStore implements store.PostStore interface
var _ store.PostStore = (*PostStore)(nil)

// WithTx implements store.PostStore.WithTx. The in-memory store has no
// transaction isolation, so the same store is returned.
func (s *PostStore) WithTx(*sql.Tx) store.PostStore {
	return s
}

// DB implements store.PostStore.DB.
func (s *PostStore) DB() *sql.DB {
	return s.db
}

// CreatePost implements store.PostStore.CreatePost.
func (s *PostStore) CreatePost(_ context.Context, authorID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPostID
	s.nextPostID++

	now := time.Now().UTC()
	s.posts[id] = &domain.Post{
		ID:        id,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostStore) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return clonePost(post), nil
}

// Update implements store.PostStore.Update. Comments appended since the load
// (ID zero) get their IDs assigned in place, mirroring the RETURNING clause
// of the PostgreSQL implementation.
func (s *PostStore) Update(_ context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return store.ErrPostNotFound
	}

	for i := range post.Comments {
		if post.Comments[i].ID == 0 {
			post.Comments[i].ID = s.nextCommentID
			s.nextCommentID++
		}
	}

	post.UpdatedAt = time.Now().UTC()
	s.posts[post.ID] = clonePost(post)
	return nil
}

// clonePost deep-copies a post aggregate, owned collections included.
func clonePost(post *domain.Post) *domain.Post {
	clone := *post
	clone.Comments = append([]domain.Comment(nil), post.Comments...)
	clone.Tags = append([]domain.Tag(nil), post.Tags...)
	return &clone
}
