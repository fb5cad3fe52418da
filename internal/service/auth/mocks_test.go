package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/auth"
	"github.com/forumhq/discuss-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByOAuthFunc    func(ctx context.Context, provider domain.OAuthProvider, oauthID string) (*domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error)

	mu    sync.Mutex
	calls struct {
		GetByID       []uuid.UUID
		GetByOAuth    []string
		GetByEmail    []string
		Create        []*domain.User
		UpdateProfile []uuid.UUID
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *userRepoMock) GetByOAuth(ctx context.Context, provider domain.OAuthProvider, oauthID string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.GetByOAuth = append(m.calls.GetByOAuth, oauthID)
	m.mu.Unlock()
	return m.GetByOAuthFunc(ctx, provider, oauthID)
}

func (m *userRepoMock) GetByOAuthCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByOAuth
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.GetByEmail = append(m.calls.GetByEmail, email)
	m.mu.Unlock()
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) GetByEmailCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByEmail
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, user)
	m.mu.Unlock()
	return m.CreateFunc(ctx, user)
}

func (m *userRepoMock) CreateCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.UpdateProfile = append(m.calls.UpdateProfile, id)
	m.mu.Unlock()
	return m.UpdateProfileFunc(ctx, id, name, avatarURL)
}

func (m *userRepoMock) UpdateProfileCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateProfile
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create          []*domain.RefreshToken
		GetByHash       []string
		RevokeByID      []uuid.UUID
		RevokeAllByUser []uuid.UUID
	}
}

func (m *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, token)
	m.mu.Unlock()
	return m.CreateFunc(ctx, token)
}

func (m *tokenRepoMock) CreateCalls() []*domain.RefreshToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	m.mu.Lock()
	m.calls.GetByHash = append(m.calls.GetByHash, tokenHash)
	m.mu.Unlock()
	return m.GetByHashFunc(ctx, tokenHash)
}

func (m *tokenRepoMock) GetByHashCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByHash
}

func (m *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.RevokeByID = append(m.calls.RevokeByID, id)
	m.mu.Unlock()
	return m.RevokeByIDFunc(ctx, id)
}

func (m *tokenRepoMock) RevokeByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RevokeByID
}

func (m *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	m.calls.RevokeAllByUser = append(m.calls.RevokeAllByUser, userID)
	m.mu.Unlock()
	return m.RevokeAllByUserFunc(ctx, userID)
}

func (m *tokenRepoMock) RevokeAllByUserCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RevokeAllByUser
}

var _ oauthVerifier = &oauthVerifierMock{}

type oauthVerifierMock struct {
	VerifyCodeFunc func(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error)

	mu    sync.Mutex
	calls []string
}

func (m *oauthVerifierMock) VerifyCode(ctx context.Context, provider, code string) (*auth.OAuthIdentity, error) {
	m.mu.Lock()
	m.calls = append(m.calls, code)
	m.mu.Unlock()
	return m.VerifyCodeFunc(ctx, provider, code)
}

func (m *oauthVerifierMock) VerifyCodeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return m.GenerateAccessTokenFunc(userID)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	return m.GenerateRefreshTokenFunc()
}
