// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/forumhq/discuss-backend/internal/adapter/postgres"
	"github.com/forumhq/discuss-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const commentColumns = `id, content, user_id, post_id, parent_id, created_at, updated_at`

const createSQL = `
INSERT INTO comments (content, user_id, post_id, parent_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns

const getByIDSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1`

const listByPostSQL = `
SELECT c.id, c.content, c.user_id, c.post_id, c.parent_id, c.created_at, c.updated_at,
       u.name, u.avatar_url
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.post_id = $1
ORDER BY c.created_at, c.id`

const deleteByPostSQL = `
DELETE FROM comments
WHERE post_id = $1`

const deleteByTopicSQL = `
DELETE FROM comments
WHERE post_id IN (SELECT id FROM posts WHERE topic_id = $1)`

// Create inserts a new comment and returns the persisted row.
// A vanished post or parent surfaces as domain.ErrNotFound via the FK
// violation.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanComment(q.QueryRow(ctx, createSQL, c.Content, c.UserID, c.PostID, c.ParentID))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("comment on post %s", c.PostID))
	}
	return created, nil
}

// GetByID returns a comment by primary key. Used to validate parent
// references before creating a reply.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("comment %s", id))
	}
	return c, nil
}

// ListByPostID returns all comments of a post with author data, oldest
// first. Insertion order ties are broken by id so the result is stable.
func (r *Repo) ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPostSQL, postID)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("comments on post %s", postID))
	}
	defer rows.Close()

	result := []domain.CommentWithAuthor{}
	for rows.Next() {
		var c domain.CommentWithAuthor
		err := rows.Scan(
			&c.ID, &c.Content, &c.UserID, &c.PostID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
			&c.AuthorName, &c.AuthorAvatar,
		)
		if err != nil {
			return nil, fmt.Errorf("comments on post %s: scan: %w", postID, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comments on post %s: %w", postID, err)
	}

	return result, nil
}

// DeleteByPostID removes every comment of a post and returns the count.
func (r *Repo) DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByPostSQL, postID)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("comments on post %s", postID))
	}
	return tag.RowsAffected(), nil
}

// DeleteByTopicID removes every comment under a topic's posts and returns
// the count. First step of the topic-delete transaction.
func (r *Repo) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByTopicSQL, topicID)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("comments in topic %s", topicID))
	}
	return tag.RowsAffected(), nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.Content, &c.UserID, &c.PostID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
