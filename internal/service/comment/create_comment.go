package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

// CreateComment adds a comment to a post, optionally as a reply to an
// existing comment on the same post.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("parent_id", "parent comment not found")
			}
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent.PostID != input.PostID {
			return nil, domain.NewValidationError("parent_id", "parent belongs to a different post")
		}
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		Content:  input.Content,
		UserID:   userID,
		PostID:   input.PostID,
		ParentID: input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Slug lookup is best effort wrt concurrent topic deletes; the comment
	// itself is already committed at this point.
	if t, err := s.topics.GetByID(ctx, p.TopicID); err == nil {
		s.pages.Invalidate("/topics/" + t.Slug + "/posts/" + p.ID.String())
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", created.ID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.Bool("is_reply", input.ParentID != nil),
	)

	return created, nil
}
