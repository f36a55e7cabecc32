package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/inkpost/inkpost-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPostFixture returns an in-memory post store holding one freshly
// created post for the given author. The new post's id is 1.
func memoryPostFixture(t *testing.T, authorID int64) *memory.PostStore {
	t.Helper()

	posts := memory.NewPostStore()
	id, err := posts.CreatePost(context.Background(), authorID)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	return posts
}

// TestPostLifecycle drives the full happy path through the services over the
// in-memory stores: register an author, add a post, title it, comment on it,
// tag it, and read it back.
func TestPostLifecycle(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	authors := memory.NewAuthorStore()
	posts := memory.NewPostStore()
	commenters := memory.NewCommenterStore()

	createAuthor, err := NewCreateAuthorService(authors, logger)
	require.NoError(t, err)
	addPost, err := NewAddPostService(authors, posts, logger)
	require.NoError(t, err)
	updateTitle, err := NewUpdateTitleService(posts, logger)
	require.NoError(t, err)
	createCommenter, err := NewCreateCommenterService(commenters, logger)
	require.NoError(t, err)
	addComment, err := NewAddCommentService(posts, commenters, logger)
	require.NoError(t, err)
	tagPost, err := NewTagPostService(posts, logger)
	require.NoError(t, err)
	incrementViews, err := NewIncrementViewCountService(posts, logger)
	require.NoError(t, err)
	getPost, err := NewGetPostService(posts, logger)
	require.NoError(t, err)

	authorID, err := createAuthor.CreateAuthor(ctx, "Ada Lovelace")
	require.NoError(t, err)

	postID, err := addPost.AddPost(ctx, authorID)
	require.NoError(t, err)

	// A new post is an empty shell bound to its author
	post, err := getPost.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "", post.Title)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Empty(t, post.Comments)
	assert.Empty(t, post.Tags)

	require.NoError(t, updateTitle.UpdateTitle(ctx, postID, "  Hello World  "))

	commenterID, err := createCommenter.CreateCommenter(ctx, "Casey")
	require.NoError(t, err)

	commentID, err := addComment.AddComment(ctx, postID, commenterID, "first!")
	require.NoError(t, err)
	assert.NotZero(t, commentID)

	require.NoError(t, tagPost.TagPost(ctx, postID, "golang"))
	require.NoError(t, tagPost.TagPost(ctx, postID, "ddd"))
	require.NoError(t, incrementViews.IncrementViewCount(ctx, postID))

	post, err = getPost.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, 1, post.CommentCount())
	assert.Equal(t, commentID, post.Comments[0].ID)
	assert.Equal(t, commenterID, post.Comments[0].CommenterID)
	assert.Len(t, post.Tags, 2)
	assert.Equal(t, int64(1), post.ViewCount)
}

// TestLockAuthorGatesNewPostsOnly verifies that locking an author blocks
// future post creation without touching the author's existing posts.
func TestLockAuthorGatesNewPostsOnly(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	authors := memory.NewAuthorStore()
	posts := memory.NewPostStore()

	createAuthor, err := NewCreateAuthorService(authors, logger)
	require.NoError(t, err)
	addPost, err := NewAddPostService(authors, posts, logger)
	require.NoError(t, err)
	lockAuthor, err := NewLockAuthorService(authors, logger)
	require.NoError(t, err)
	updateTitle, err := NewUpdateTitleService(posts, logger)
	require.NoError(t, err)
	getPost, err := NewGetPostService(posts, logger)
	require.NoError(t, err)

	authorID, err := createAuthor.CreateAuthor(ctx, "Grace Hopper")
	require.NoError(t, err)

	existingPostID, err := addPost.AddPost(ctx, authorID)
	require.NoError(t, err)

	require.NoError(t, lockAuthor.LockAuthor(ctx, authorID))

	// Locking is idempotent
	require.NoError(t, lockAuthor.LockAuthor(ctx, authorID))

	// New posts are blocked
	_, err = addPost.AddPost(ctx, authorID)
	assert.ErrorIs(t, err, ErrAuthorLocked)

	// Existing posts stay mutable
	require.NoError(t, updateTitle.UpdateTitle(ctx, existingPostID, "Still Editable"))

	post, err := getPost.GetPost(ctx, existingPostID)
	require.NoError(t, err)
	assert.Equal(t, "Still Editable", post.Title)
}

func TestLockAuthorUnknownAuthor(t *testing.T) {
	logger := slog.Default()

	lockAuthor, err := NewLockAuthorService(memory.NewAuthorStore(), logger)
	require.NoError(t, err)

	err = lockAuthor.LockAuthor(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}
