package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

// CreatePost creates a post in a topic, authored by the authenticated user.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	created, err := s.posts.Create(ctx, &domain.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  userID,
		TopicID: t.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.pages.Invalidate("/topics/" + t.Slug)

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", created.ID.String()),
		slog.String("topic_slug", t.Slug),
	)

	return created, nil
}
