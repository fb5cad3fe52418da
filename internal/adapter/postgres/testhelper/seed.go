package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and OAuth identity.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Provider:  domain.OAuthProviderGithub,
		OAuthID:   "oauth-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, oauth_provider, oauth_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Provider), user.OAuthID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates a topic owned by userID with a unique slug.
// Returns a filled domain.Topic.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:          uuid.New(),
		Slug:        "topic" + suffix,
		Description: "Seeded topic " + suffix,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, slug, description, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		topic.ID, topic.Slug, topic.Description, topic.UserID, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedPost creates a post in topicID authored by userID.
// Returns a filled domain.Post.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID, topicID uuid.UUID) domain.Post {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	post := domain.Post{
		ID:        uuid.New(),
		Title:     "Seeded post " + suffix,
		Content:   "Seeded post content " + suffix,
		UserID:    userID,
		TopicID:   topicID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, title, content, user_id, topic_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		post.ID, post.Title, post.Content, post.UserID, post.TopicID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert post: %v", err)
	}

	return post
}

// SeedComment creates a comment on postID authored by userID.
// parentID may be nil for a top-level comment.
// Returns a filled domain.Comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, userID, postID uuid.UUID, parentID *uuid.UUID) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	comment := domain.Comment{
		ID:        uuid.New(),
		Content:   "Seeded comment " + suffix,
		UserID:    userID,
		PostID:    postID,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO comments (id, content, user_id, post_id, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		comment.ID, comment.Content, comment.UserID, comment.PostID, comment.ParentID, comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert comment: %v", err)
	}

	return comment
}
