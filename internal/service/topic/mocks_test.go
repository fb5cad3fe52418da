package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc         func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*domain.Topic, error)
	ExistsBySlugFunc   func(ctx context.Context, slug string) (bool, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (int64, error)
	ListWithCountsFunc func(ctx context.Context, limit int) ([]domain.TopicWithCount, error)

	mu    sync.Mutex
	calls struct {
		Create         []*domain.Topic
		GetByID        []uuid.UUID
		GetBySlug      []string
		ExistsBySlug   []string
		Delete         []uuid.UUID
		ListWithCounts []int
	}
}

func (m *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, t)
	m.mu.Unlock()
	return m.CreateFunc(ctx, t)
}

func (m *topicRepoMock) CreateCalls() []*domain.Topic {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
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

func (m *topicRepoMock) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	m.mu.Lock()
	m.calls.ExistsBySlug = append(m.calls.ExistsBySlug, slug)
	m.mu.Unlock()
	return m.ExistsBySlugFunc(ctx, slug)
}

func (m *topicRepoMock) ExistsBySlugCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ExistsBySlug
}

func (m *topicRepoMock) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *topicRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *topicRepoMock) ListWithCounts(ctx context.Context, limit int) ([]domain.TopicWithCount, error) {
	m.mu.Lock()
	m.calls.ListWithCounts = append(m.calls.ListWithCounts, limit)
	m.mu.Unlock()
	return m.ListWithCountsFunc(ctx, limit)
}

func (m *topicRepoMock) ListWithCountsCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ListWithCounts
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	DeleteByTopicIDFunc func(ctx context.Context, topicID uuid.UUID) (int64, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *postRepoMock) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, topicID)
	m.mu.Unlock()
	return m.DeleteByTopicIDFunc(ctx, topicID)
}

func (m *postRepoMock) DeleteByTopicIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	DeleteByTopicIDFunc func(ctx context.Context, topicID uuid.UUID) (int64, error)

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *commentRepoMock) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (int64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, topicID)
	m.mu.Unlock()
	return m.DeleteByTopicIDFunc(ctx, topicID)
}

func (m *commentRepoMock) DeleteByTopicIDCalls() []uuid.UUID {
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
