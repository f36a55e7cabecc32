package service

import (
	"context"
	"database/sql"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockPostStore is a mock implementation of store.PostStore
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) CreatePost(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}

func (m *MockPostStore) DB() *sql.DB {
	return nil
}

// mockAuthorNamed matches an author argument by (trimmed) name.
func mockAuthorNamed(name string) interface{} {
	return mock.MatchedBy(func(a *domain.Author) bool {
		return a.Name == name
	})
}

// mockCommenterNamed matches a commenter argument by (trimmed) name.
func mockCommenterNamed(name string) interface{} {
	return mock.MatchedBy(func(c *domain.Commenter) bool {
		return c.Name == name
	})
}

// MockAuthorStore is a mock implementation of store.AuthorStore
type MockAuthorStore struct {
	mock.Mock
}

func (m *MockAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	args := m.Called(ctx, id)
	author, _ := args.Get(0).(*domain.Author)
	return author, args.Error(1)
}

func (m *MockAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return m
}

// MockCommenterStore is a mock implementation of store.CommenterStore
type MockCommenterStore struct {
	mock.Mock
}

func (m *MockCommenterStore) Create(ctx context.Context, commenter *domain.Commenter) error {
	args := m.Called(ctx, commenter)
	return args.Error(0)
}

func (m *MockCommenterStore) GetByID(ctx context.Context, id int64) (*domain.Commenter, error) {
	args := m.Called(ctx, id)
	commenter, _ := args.Get(0).(*domain.Commenter)
	return commenter, args.Error(1)
}
