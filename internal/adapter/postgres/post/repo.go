// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/forumhq/discuss-backend/internal/adapter/postgres"
	"github.com/forumhq/discuss-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postColumns = `id, title, content, user_id, topic_id, created_at, updated_at`

const createSQL = `
INSERT INTO posts (title, content, user_id, topic_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + postColumns

const getByIDSQL = `
SELECT ` + postColumns + `
FROM posts
WHERE id = $1`

const getWithDataSQL = `
SELECT p.id, p.title, p.content, p.user_id, p.topic_id, p.created_at, p.updated_at,
       t.slug,
       u.name,
       count(c.id) AS comment_count
FROM posts p
JOIN topics t ON t.id = p.topic_id
JOIN users u ON u.id = p.user_id
LEFT JOIN comments c ON c.post_id = p.id
WHERE p.id = $1
GROUP BY p.id, t.slug, u.name`

const listByTopicSQL = `
SELECT p.id, p.title, p.content, p.user_id, p.topic_id, p.created_at, p.updated_at,
       t.slug,
       u.name,
       count(c.id) AS comment_count
FROM posts p
JOIN topics t ON t.id = p.topic_id
JOIN users u ON u.id = p.user_id
LEFT JOIN comments c ON c.post_id = p.id
WHERE t.slug = $1
GROUP BY p.id, t.slug, u.name
ORDER BY p.created_at DESC, p.id`

const topByCommentsSQL = `
SELECT p.id, p.title, p.content, p.user_id, p.topic_id, p.created_at, p.updated_at,
       t.slug,
       u.name,
       count(c.id) AS comment_count
FROM posts p
JOIN topics t ON t.id = p.topic_id
JOIN users u ON u.id = p.user_id
LEFT JOIN comments c ON c.post_id = p.id
GROUP BY p.id, t.slug, u.name
ORDER BY comment_count DESC, p.created_at DESC, p.id
LIMIT $1`

const deleteSQL = `
DELETE FROM posts
WHERE id = $1`

const deleteByTopicSQL = `
DELETE FROM posts
WHERE topic_id = $1`

// Create inserts a new post and returns the persisted row.
// A vanished topic surfaces as domain.ErrNotFound via the FK violation.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPost(q.QueryRow(ctx, createSQL, p.Title, p.Content, p.UserID, p.TopicID))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("post in topic %s", p.TopicID))
	}
	return created, nil
}

// GetByID returns the bare post row without joins. Used by ownership checks.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("post %s", id))
	}
	return p, nil
}

// GetWithData returns a post together with its topic slug, author name and
// comment count.
func (r *Repo) GetWithData(ctx context.Context, id uuid.UUID) (*domain.PostWithData, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.PostWithData
	err := scanPostWithData(q.QueryRow(ctx, getWithDataSQL, id), &p)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("post %s", id))
	}
	return &p, nil
}

// ListByTopicSlug returns the posts of a topic, newest first.
// An unknown slug yields an empty slice; callers that need to distinguish
// "empty topic" from "no topic" resolve the slug first.
func (r *Repo) ListByTopicSlug(ctx context.Context, slug string) ([]domain.PostWithData, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByTopicSQL, slug)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("posts in topic %s", slug))
	}
	return collectPostsWithData(rows, fmt.Sprintf("posts in topic %s", slug))
}

// TopByComments returns the most commented posts across all topics.
func (r *Repo) TopByComments(ctx context.Context, limit int) ([]domain.PostWithData, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, topByCommentsSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "top posts")
	}
	return collectPostsWithData(rows, "top posts")
}

// Search returns posts whose title or content matches term, or whose topic
// slug or description does (case-insensitive). Most recent first.
func (r *Repo) Search(ctx context.Context, term string, limit int) ([]domain.PostWithData, error) {
	pattern := "%" + postgres.EscapeLike(term) + "%"
	query := postgres.Builder().
		Select("p.id", "p.title", "p.content", "p.user_id", "p.topic_id", "p.created_at", "p.updated_at",
			"t.slug", "u.name", "count(c.id) AS comment_count").
		From("posts p").
		Join("topics t ON t.id = p.topic_id").
		Join("users u ON u.id = p.user_id").
		LeftJoin("comments c ON c.post_id = p.id").
		Where(sq.Or{
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.content": pattern},
			sq.ILike{"t.slug": pattern},
			sq.ILike{"t.description": pattern},
		}).
		GroupBy("p.id", "t.slug", "u.name").
		OrderBy("p.created_at DESC", "p.id")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("search posts: build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "search posts")
	}
	return collectPostsWithData(rows, "search posts")
}

// Delete removes the post row and reports how many rows went away.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("post %s", id))
	}
	return tag.RowsAffected(), nil
}

// DeleteByTopicID removes every post of a topic and returns the count.
// Comments must already be gone; runs inside the topic-delete transaction.
func (r *Repo) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByTopicSQL, topicID)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("posts in topic %s", topicID))
	}
	return tag.RowsAffected(), nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.TopicID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPostWithData(row pgx.Row, p *domain.PostWithData) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Content, &p.UserID, &p.TopicID, &p.CreatedAt, &p.UpdatedAt,
		&p.TopicSlug, &p.AuthorName, &p.CommentCount,
	)
}

func collectPostsWithData(rows pgx.Rows, op string) ([]domain.PostWithData, error) {
	defer rows.Close()

	result := []domain.PostWithData{}
	for rows.Next() {
		var p domain.PostWithData
		if err := scanPostWithData(rows, &p); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
