package post

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc          func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetWithDataFunc     func(ctx context.Context, id uuid.UUID) (*domain.PostWithData, error)
	ListByTopicSlugFunc func(ctx context.Context, slug string) ([]domain.PostWithData, error)
	TopByCommentsFunc   func(ctx context.Context, limit int) ([]domain.PostWithData, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (int64, error)

	mu    sync.Mutex
	calls struct {
		Create          []*domain.Post
		GetByID         []uuid.UUID
		GetWithData     []uuid.UUID
		ListByTopicSlug []string
		TopByComments   []int
		Delete          []uuid.UUID
	}
}

func (m *postRepoMock) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *postRepoMock) CreateCalls() []*domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *postRepoMock) GetWithData(ctx context.Context, id uuid.UUID) (*domain.PostWithData, error) {
	m.mu.Lock()
	m.calls.GetWithData = append(m.calls.GetWithData, id)
	m.mu.Unlock()
	return m.GetWithDataFunc(ctx, id)
}

func (m *postRepoMock) GetWithDataCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetWithData
}

func (m *postRepoMock) ListByTopicSlug(ctx context.Context, slug string) ([]domain.PostWithData, error) {
	m.mu.Lock()
	m.calls.ListByTopicSlug = append(m.calls.ListByTopicSlug, slug)
	m.mu.Unlock()
	return m.ListByTopicSlugFunc(ctx, slug)
}

func (m *postRepoMock) ListByTopicSlugCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListByTopicSlug
}

func (m *postRepoMock) TopByComments(ctx context.Context, limit int) ([]domain.PostWithData, error) {
	m.mu.Lock()
	m.calls.TopByComments = append(m.calls.TopByComments, limit)
	m.mu.Unlock()
	return m.TopByCommentsFunc(ctx, limit)
}

func (m *postRepoMock) TopByCommentsCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.TopByComments
}

func (m *postRepoMock) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *postRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Topic, error)

	mu    sync.Mutex
	calls struct {
		GetByID   []uuid.UUID
		GetBySlug []string
	}
}

func (m *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *topicRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *topicRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	m.mu.Lock()
	m.calls.GetBySlug = append(m.calls.GetBySlug, slug)
	m.mu.Unlock()
	return m.GetBySlugFunc(ctx, slug)
}

func (m *topicRepoMock) GetBySlugCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetBySlug
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	DeleteByPostIDFunc func(ctx context.Context, postID uuid.UUID) (int64, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *commentRepoMock) DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, postID)
	m.mu.Unlock()
	return m.DeleteByPostIDFunc(ctx, postID)
}

func (m *commentRepoMock) DeleteByPostIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
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
