package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

// DeleteTopic removes a topic with all its posts and their comments.
// Only the topic owner may delete it. The cascade runs in one transaction,
// children first, so a failure leaves the forum untouched.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	t, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return fmt.Errorf("get topic: %w", err)
	}
	if !t.IsOwnedBy(userID) {
		return domain.ErrForbidden
	}

	var commentsDeleted, postsDeleted int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		commentsDeleted, err = s.comments.DeleteByTopicID(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}

		postsDeleted, err = s.posts.DeleteByTopicID(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}

		rows, err := s.topics.Delete(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		if rows == 0 {
			// Someone else deleted it between our read and this write.
			return fmt.Errorf("topic %s: %w", input.TopicID, domain.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.pages.Invalidate("/")

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("slug", t.Slug),
		slog.Int64("posts_deleted", postsDeleted),
		slog.Int64("comments_deleted", commentsDeleted),
	)

	return nil
}
