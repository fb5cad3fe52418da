package topic

import (
	"context"
	"fmt"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// ListTopics returns all topics with their post counts, most active first.
func (s *Service) ListTopics(ctx context.Context) ([]domain.TopicWithCount, error) {
	list, err := s.topics.ListWithCounts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return list, nil
}

// TrendingTopics returns the most active topics, capped by the configured
// trending limit.
func (s *Service) TrendingTopics(ctx context.Context) ([]domain.TopicWithCount, error) {
	list, err := s.topics.ListWithCounts(ctx, s.trendingLimit)
	if err != nil {
		return nil, fmt.Errorf("trending topics: %w", err)
	}
	return list, nil
}
