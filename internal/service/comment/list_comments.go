package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// ListComments returns the comment tree of a post: top-level comments in
// creation order, replies nested under their parents.
func (s *Service) ListComments(ctx context.Context, postID uuid.UUID) ([]*domain.CommentNode, error) {
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	flat, err := s.comments.ListByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return domain.BuildCommentTree(flat), nil
}
