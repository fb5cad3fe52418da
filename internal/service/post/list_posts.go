package post

import (
	"context"
	"fmt"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// ListByTopic returns the posts of a topic, newest first.
// Returns ErrNotFound when the topic itself does not exist, so callers can
// tell an empty topic apart from a missing one.
func (s *Service) ListByTopic(ctx context.Context, slug string) ([]domain.PostWithData, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	if _, err := s.topics.GetBySlug(ctx, slug); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	list, err := s.posts.ListByTopicSlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return list, nil
}
