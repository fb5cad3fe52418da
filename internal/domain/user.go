package domain

import (
	"time"

	"github.com/google/uuid"
)

// OAuthProvider identifies the external identity provider a user signed in with.
type OAuthProvider string

const (
	OAuthProviderGithub OAuthProvider = "github"
)

// User represents an authenticated forum user. Users are created by the auth
// service on first OAuth sign-in and are never mutated by the forum core
// beyond profile refreshes from the provider.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	AvatarURL *string
	Provider  OAuthProvider
	OAuthID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
// The raw token is only ever held by the client; the database sees its
// SHA-256 hash.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
