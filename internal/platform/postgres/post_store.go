package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
	"github.com/inkpost/inkpost-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface using a
// PostgreSQL database as the storage backend. The post aggregate spans three
// tables: posts, comments, and post_tags.
type PostgresPostStore struct {
	db     store.DBTX
	conn   *sql.DB
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts the database connection, which should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresPostStore(db *sql.DB, log *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		conn:   db,
		logger: log.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		conn:   s.conn,
		logger: s.logger,
	}
}

// DB implements store.PostStore.DB
func (s *PostgresPostStore) DB() *sql.DB {
	return s.conn
}

// CreatePost implements store.PostStore.CreatePost
// It inserts an empty post shell bound to the given author; the database
// allocates the identity.
// Returns store.ErrInvalidEntity if the author reference does not resolve.
func (s *PostgresPostStore) CreatePost(ctx context.Context, authorID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO posts (author_id, title, content, view_count, created_at, updated_at)
		VALUES ($1, '', '', 0, $2, $2)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, authorID, now).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.Int64("author_id", authorID))
			return 0, fmt.Errorf("%w: author with ID %d not found",
				store.ErrInvalidEntity, authorID)
		}
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("author_id", authorID))
		return 0, MapError(err)
	}

	log.Debug("post row created",
		slog.Int64("post_id", id),
		slog.Int64("author_id", authorID))
	return id, nil
}

// GetByID implements store.PostStore.GetByID
// It loads the full aggregate: the post row, its comments ordered by
// creation, and its tags.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, author_id, title, content, view_count, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	post := &domain.Post{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.ViewCount,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	if err := s.loadComments(ctx, post); err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update implements store.PostStore.Update
// It persists scalar fields, replaces the tag set, and inserts comments
// appended since the aggregate was loaded (those with a zero ID), assigning
// their database identities in place.
// Returns store.ErrPostNotFound if the post row does not exist.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = $2, content = $3, view_count = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Content,
		post.ViewCount,
		time.Now().UTC(),
	)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rows == 0 {
		log.Debug("post not found during update", slog.Int64("post_id", post.ID))
		return store.ErrPostNotFound
	}

	if err := s.syncTags(ctx, post); err != nil {
		log.Error("failed to sync post tags",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return err
	}

	if err := s.insertNewComments(ctx, post); err != nil {
		log.Error("failed to insert post comments",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return err
	}

	log.Debug("post updated", slog.Int64("post_id", post.ID))
	return nil
}

// loadComments populates the post's owned comment collection in creation order.
func (s *PostgresPostStore) loadComments(ctx context.Context, post *domain.Post) error {
	query := `
		SELECT id, post_id, commenter_id, text, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, post.ID)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.CommenterID, &c.Text, &c.CreatedAt); err != nil {
			return MapError(err)
		}
		post.Comments = append(post.Comments, c)
	}
	return MapError(rows.Err())
}

// loadTags populates the post's tag set.
func (s *PostgresPostStore) loadTags(ctx context.Context, post *domain.Post) error {
	query := `
		SELECT name
		FROM post_tags
		WHERE post_id = $1
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query, post.ID)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return MapError(err)
		}
		post.Tags = append(post.Tags, domain.Tag{Name: name})
	}
	return MapError(rows.Err())
}

// syncTags replaces the stored tag set with the aggregate's current one.
// Tags are value objects without identity, so replace-on-write is simpler
// and just as correct as diffing.
func (s *PostgresPostStore) syncTags(ctx context.Context, post *domain.Post) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM post_tags WHERE post_id = $1`, post.ID); err != nil {
		return MapError(err)
	}

	for _, tag := range post.Tags {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, name) VALUES ($1, $2)`,
			post.ID, tag.Name); err != nil {
			return MapError(err)
		}
	}
	return nil
}

// insertNewComments persists comments appended through the aggregate root
// since the load, assigning their database-allocated IDs in place.
func (s *PostgresPostStore) insertNewComments(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO comments (post_id, commenter_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	for i := range post.Comments {
		comment := &post.Comments[i]
		if comment.ID != 0 {
			continue
		}
		err := s.db.QueryRowContext(
			ctx,
			query,
			post.ID,
			comment.CommenterID,
			comment.Text,
			comment.CreatedAt,
		).Scan(&comment.ID)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: commenter with ID %d not found",
					store.ErrInvalidEntity, comment.CommenterID)
			}
			return MapError(err)
		}
	}
	return nil
}
