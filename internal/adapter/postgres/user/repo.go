// Package user implements the User repository using PostgreSQL.
// Users are written by the auth service on sign-in; the forum core only
// reads them.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/forumhq/discuss-backend/internal/adapter/postgres"
	"github.com/forumhq/discuss-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, avatar_url, oauth_provider, oauth_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByOAuthSQL = `
SELECT ` + userColumns + `
FROM users
WHERE oauth_provider = $1 AND oauth_id = $2`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const createSQL = `
INSERT INTO users (id, email, name, avatar_url, oauth_provider, oauth_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

const updateProfileSQL = `
UPDATE users
SET name       = COALESCE($2, name),
    avatar_url = COALESCE($3, avatar_url),
    updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %s", id))
	}
	return u, nil
}

// GetByOAuth returns a user by OAuth provider and provider-side ID.
func (r *Repo) GetByOAuth(ctx context.Context, provider domain.OAuthProvider, oauthID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByOAuthSQL, string(provider), oauthID))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %s/%s", provider, oauthID))
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user email %s", email))
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists on a duplicate email or OAuth identity.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Name, u.AvatarURL, string(u.Provider), u.OAuthID, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %s", u.ID))
	}
	return created, nil
}

// UpdateProfile refreshes name and avatar_url from the OAuth provider.
// nil fields are left unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateProfileSQL, id, name, avatarURL))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("user %s", id))
	}
	return u, nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u        domain.User
		provider string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &provider, &u.OAuthID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Provider = domain.OAuthProvider(provider)
	return &u, nil
}

func mapError(err error, ref string) error {
	return postgres.MapError(err, ref)
}
