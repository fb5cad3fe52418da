// Package topic implements topic management: creation, listing, lookup
// and the owner-guarded cascade delete.
package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Topic, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListWithCounts(ctx context.Context, limit int) ([]domain.TopicWithCount, error)
}

type postRepo interface {
	DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error)
}

type commentRepo interface {
	DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type invalidator interface {
	Invalidate(path string)
}

// Service provides topic management operations.
type Service struct {
	topics        topicRepo
	posts         postRepo
	comments      commentRepo
	tx            txManager
	pages         invalidator
	trendingLimit int
	log           *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	posts postRepo,
	comments commentRepo,
	tx txManager,
	pages invalidator,
	trendingLimit int,
) *Service {
	return &Service{
		topics:        topics,
		posts:         posts,
		comments:      comments,
		tx:            tx,
		pages:         pages,
		trendingLimit: trendingLimit,
		log:           log.With("service", "topic"),
	}
}
