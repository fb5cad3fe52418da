// Package post implements post management inside topics.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetWithData(ctx context.Context, id uuid.UUID) (*domain.PostWithData, error)
	ListByTopicSlug(ctx context.Context, slug string) ([]domain.PostWithData, error)
	TopByComments(ctx context.Context, limit int) ([]domain.PostWithData, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Topic, error)
}

type commentRepo interface {
	DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type invalidator interface {
	Invalidate(path string)
}

// Service provides post management operations.
type Service struct {
	posts    postRepo
	topics   topicRepo
	comments commentRepo
	tx       txManager
	pages    invalidator
	topLimit int
	log      *slog.Logger
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	topics topicRepo,
	comments commentRepo,
	tx txManager,
	pages invalidator,
	topLimit int,
) *Service {
	return &Service{
		posts:    posts,
		topics:   topics,
		comments: comments,
		tx:       tx,
		pages:    pages,
		topLimit: topLimit,
		log:      log.With("service", "post"),
	}
}
