package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc       func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPostIDFunc func(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error)

	mu    sync.Mutex
	calls struct {
		Create       []*domain.Comment
		GetByID      []uuid.UUID
		ListByPostID []uuid.UUID
	}
}

func (m *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *commentRepoMock) CreateCalls() []*domain.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *commentRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *commentRepoMock) ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentWithAuthor, error) {
	m.mu.Lock()
	m.calls.ListByPostID = append(m.calls.ListByPostID, postID)
	m.mu.Unlock()
	return m.ListByPostIDFunc(ctx, postID)
}

func (m *commentRepoMock) ListByPostIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListByPostID
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *topicRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ invalidator = &invalidatorMock{}

type invalidatorMock struct {
	mu    sync.Mutex
	paths []string
}

func (m *invalidatorMock) Invalidate(path string) {
	m.mu.Lock()
	m.paths = append(m.paths, path)
	m.mu.Unlock()
}

func (m *invalidatorMock) InvalidateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paths
}
