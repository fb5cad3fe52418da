package post

import (
	"context"
	"fmt"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// TopPosts returns the most commented posts across the whole forum, capped
// by the configured limit.
func (s *Service) TopPosts(ctx context.Context) ([]domain.PostWithData, error) {
	list, err := s.posts.TopByComments(ctx, s.topLimit)
	if err != nil {
		return nil, fmt.Errorf("top posts: %w", err)
	}
	return list, nil
}
