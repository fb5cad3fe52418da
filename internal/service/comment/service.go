// Package comment implements threaded comments on posts.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error)
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
}

type invalidator interface {
	Invalidate(path string)
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	posts    postRepo
	topics   topicRepo
	pages    invalidator
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	posts postRepo,
	topics topicRepo,
	pages invalidator,
) *Service {
	return &Service{
		comments: comments,
		posts:    posts,
		topics:   topics,
		pages:    pages,
		log:      log.With("service", "comment"),
	}
}
