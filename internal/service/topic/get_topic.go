package topic

import (
	"context"
	"fmt"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// GetTopic returns a topic by its slug. Public, no authentication needed.
func (s *Service) GetTopic(ctx context.Context, slug string) (*domain.Topic, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	t, err := s.topics.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return t, nil
}
