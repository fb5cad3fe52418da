package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

// DeletePost removes a post with all its comments. Only the post author may
// delete it. Comments go first, inside one transaction.
func (s *Service) DeletePost(ctx context.Context, input DeletePostInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if !p.IsOwnedBy(userID) {
		return domain.ErrForbidden
	}

	// Slug is only needed for page invalidation, resolve it before the tx.
	t, err := s.topics.GetByID(ctx, p.TopicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	var commentsDeleted int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		commentsDeleted, err = s.comments.DeleteByPostID(txCtx, input.PostID)
		if err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		rows, err := s.posts.Delete(txCtx, input.PostID)
		if err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("post %s: %w", input.PostID, domain.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.pages.Invalidate("/topics/" + t.Slug)

	s.log.InfoContext(ctx, "post deleted",
		slog.String("user_id", userID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.String("topic_slug", t.Slug),
		slog.Int64("comments_deleted", commentsDeleted),
	)

	return nil
}
