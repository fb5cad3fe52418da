// Package search implements the cross-entity forum search.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/forumhq/discuss-backend/internal/domain"
)

type topicRepo interface {
	SearchWithCounts(ctx context.Context, term string, limit int) ([]domain.TopicWithCount, error)
}

type postRepo interface {
	Search(ctx context.Context, term string, limit int) ([]domain.PostWithData, error)
}

// Result bundles the matches of one search across both entity kinds.
type Result struct {
	Topics []domain.TopicWithCount
	Posts  []domain.PostWithData
}

// Service provides the forum search.
type Service struct {
	topics topicRepo
	posts  postRepo
	limit  int
	log    *slog.Logger
}

// NewService creates a new Search service.
func NewService(log *slog.Logger, topics topicRepo, posts postRepo, limit int) *Service {
	return &Service{
		topics: topics,
		posts:  posts,
		limit:  limit,
		log:    log.With("service", "search"),
	}
}

// Search matches topics by slug and description, and posts by title,
// content or their topic's slug and description. Matching is
// case-insensitive substring. Public, no authentication needed.
func (s *Service) Search(ctx context.Context, term string) (*Result, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	topics, err := s.topics.SearchWithCounts(ctx, term, s.limit)
	if err != nil {
		return nil, fmt.Errorf("search topics: %w", err)
	}

	posts, err := s.posts.Search(ctx, term, s.limit)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	s.log.DebugContext(ctx, "search executed",
		slog.String("term", term),
		slog.Int("topics", len(topics)),
		slog.Int("posts", len(posts)),
	)

	return &Result{Topics: topics, Posts: posts}, nil
}
