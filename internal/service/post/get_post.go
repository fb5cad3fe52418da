package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// GetPost returns a post with its topic slug, author name and comment count.
// Public, no authentication needed.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostWithData, error) {
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	p, err := s.posts.GetWithData(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}
