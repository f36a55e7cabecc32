package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPostService_TagPost(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	t.Run("tag names are trimmed", func(t *testing.T) {
		posts := memoryPostFixture(t, 1)

		svc, err := NewTagPostService(posts, logger)
		require.NoError(t, err)

		require.NoError(t, svc.TagPost(ctx, 1, "  golang  "))

		post, err := posts.GetByID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, post.Tags, 1)
		assert.Equal(t, "golang", post.Tags[0].Name)
	})

	t.Run("duplicate tags collapse into a set", func(t *testing.T) {
		posts := memoryPostFixture(t, 1)

		svc, err := NewTagPostService(posts, logger)
		require.NoError(t, err)

		require.NoError(t, svc.TagPost(ctx, 1, "golang"))
		require.NoError(t, svc.TagPost(ctx, 1, "golang"))
		require.NoError(t, svc.TagPost(ctx, 1, " golang "))

		post, err := posts.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, post.Tags, 1)
	})

	t.Run("empty name fails validation", func(t *testing.T) {
		posts := memoryPostFixture(t, 1)

		svc, err := NewTagPostService(posts, logger)
		require.NoError(t, err)

		err = svc.TagPost(ctx, 1, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyTagName)
	})

	t.Run("unknown post fails with not found", func(t *testing.T) {
		posts := memoryPostFixture(t, 1)

		svc, err := NewTagPostService(posts, logger)
		require.NoError(t, err)

		err = svc.TagPost(ctx, 999, "golang")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestIncrementViewCountService(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	posts := memoryPostFixture(t, 1)

	svc, err := NewIncrementViewCountService(posts, logger)
	require.NoError(t, err)

	require.NoError(t, svc.IncrementViewCount(ctx, 1))
	require.NoError(t, svc.IncrementViewCount(ctx, 1))

	post, err := posts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), post.ViewCount)

	err = svc.IncrementViewCount(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreateAuthorService(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("Create", ctx, mockAuthorNamed("Ada Lovelace")).Return(nil)

		svc, err := NewCreateAuthorService(authors, logger)
		require.NoError(t, err)

		_, err = svc.CreateAuthor(ctx, "  Ada Lovelace  ")
		require.NoError(t, err)

		authors.AssertExpectations(t)
	})

	t.Run("empty name fails validation", func(t *testing.T) {
		authors := &MockAuthorStore{}

		svc, err := NewCreateAuthorService(authors, logger)
		require.NoError(t, err)

		_, err = svc.CreateAuthor(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptyAuthorName)

		authors.AssertNotCalled(t, "Create", ctx, "   ")
	})
}

func TestCreateCommenterService(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	commenters := &MockCommenterStore{}
	commenters.On("Create", ctx, mockCommenterNamed("Casey")).Return(nil)

	svc, err := NewCreateCommenterService(commenters, logger)
	require.NoError(t, err)

	_, err = svc.CreateCommenter(ctx, "Casey")
	require.NoError(t, err)

	_, err = svc.CreateCommenter(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyCommenterName)
}
