package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/pkg/ctxutil"
)

// CreateTopic creates a topic owned by the authenticated user.
// Slugs are globally unique. The existence pre-check gives a clean error
// for the common case; a concurrent create racing past it is caught by the
// unique index and surfaces as the same ErrAlreadyExists.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.topics.ExistsBySlug(ctx, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("topic %q: %w", input.Slug, domain.ErrAlreadyExists)
	}

	created, err := s.topics.Create(ctx, &domain.Topic{
		Slug:        input.Slug,
		Description: input.Description,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.pages.Invalidate("/")

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}
