// Package topic implements the Topic repository using PostgreSQL.
// Fixed-shape queries are plain SQL consts; the listing/search projections
// are built with squirrel because their filters and limits vary.
package topic

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

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const topicColumns = `id, slug, description, user_id, created_at, updated_at`

const createSQL = `
INSERT INTO topics (slug, description, user_id)
VALUES ($1, $2, $3)
RETURNING ` + topicColumns

const getByIDSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE id = $1`

const getBySlugSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE slug = $1`

const existsBySlugSQL = `
SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`

const deleteSQL = `
DELETE FROM topics
WHERE id = $1`

// Create inserts a new topic and returns the persisted row.
// Returns domain.ErrAlreadyExists when the slug is taken; the unique index
// is the correctness mechanism under concurrent creates, the service-level
// pre-check only exists for a friendlier field error.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTopic(q.QueryRow(ctx, createSQL, t.Slug, t.Description, t.UserID))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("topic %s", t.Slug))
	}
	return created, nil
}

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("topic %s", id))
	}
	return t, nil
}

// GetBySlug returns a topic by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("topic %s", slug))
	}
	return t, nil
}

// ExistsBySlug reports whether a topic with the given slug exists.
func (r *Repo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsBySlugSQL, slug).Scan(&exists); err != nil {
		return false, postgres.MapError(err, fmt.Sprintf("topic %s", slug))
	}
	return exists, nil
}

// Delete removes the topic row and reports how many rows went away.
// 0 means the topic was already gone; the orchestrator treats that as
// NotFound, never as a failure.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("topic %s", id))
	}
	return tag.RowsAffected(), nil
}

// listBuilder is the shared SELECT for topic projections with post counts,
// ordered by post count descending (trending order).
func listBuilder() sq.SelectBuilder {
	return postgres.Builder().
		Select("t.id", "t.slug", "t.description", "t.user_id", "t.created_at", "t.updated_at",
			"count(p.id) AS post_count").
		From("topics t").
		LeftJoin("posts p ON p.topic_id = t.id").
		GroupBy("t.id").
		OrderBy("post_count DESC", "t.slug ASC")
}

// ListWithCounts returns topics with their post counts ordered by post
// count descending. limit <= 0 means no limit.
// Returns an empty slice (not nil) when there are no topics.
func (r *Repo) ListWithCounts(ctx context.Context, limit int) ([]domain.TopicWithCount, error) {
	query := listBuilder()
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return r.queryTopicsWithCounts(ctx, query, "list topics")
}

// SearchWithCounts returns topics whose slug or description contains term
// (case-insensitive), in trending order.
func (r *Repo) SearchWithCounts(ctx context.Context, term string, limit int) ([]domain.TopicWithCount, error) {
	pattern := "%" + postgres.EscapeLike(term) + "%"
	query := listBuilder().
		Where(sq.Or{
			sq.ILike{"t.slug": pattern},
			sq.ILike{"t.description": pattern},
		})
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return r.queryTopicsWithCounts(ctx, query, "search topics")
}

func (r *Repo) queryTopicsWithCounts(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.TopicWithCount, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []domain.TopicWithCount{}
	for rows.Next() {
		var t domain.TopicWithCount
		if err := rows.Scan(&t.ID, &t.Slug, &t.Description, &t.UserID, &t.CreatedAt, &t.UpdatedAt, &t.PostCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.Slug, &t.Description, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
