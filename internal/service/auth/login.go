package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/auth"
	"github.com/forumhq/discuss-backend/internal/domain"
)

// Login exchanges an OAuth authorization code for a token pair.
// A first-time identity creates a new user; a returning one gets its profile
// refreshed from the provider. An existing account with the same verified
// email is treated as the same user (account linking by email).
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.oauth.VerifyCode(ctx, input.Provider, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))

	provider := domain.OAuthProvider(input.Provider)

	// Returning OAuth user.
	user, err := s.users.GetByOAuth(ctx, provider, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user != nil {
		if profileChanged(user, identity) {
			user, err = s.users.UpdateProfile(ctx, user.ID, identity.Name, identity.AvatarURL)
			if err != nil {
				return nil, fmt.Errorf("auth.Login update profile: %w", err)
			}
		}

		result, err := s.issueTokens(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
		}

		s.log.InfoContext(ctx, "user logged in via oauth",
			slog.String("user_id", user.ID.String()),
			slog.String("provider", input.Provider))

		return result, nil
	}

	// Same verified email, registered through another path earlier.
	user, err = s.users.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user by email: %w", err)
	}

	if user != nil {
		if profileChanged(user, identity) {
			user, err = s.users.UpdateProfile(ctx, user.ID, identity.Name, identity.AvatarURL)
			if err != nil {
				return nil, fmt.Errorf("auth.Login update profile: %w", err)
			}
		}

		result, err := s.issueTokens(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
		}

		s.log.InfoContext(ctx, "oauth matched existing account by email",
			slog.String("user_id", user.ID.String()),
			slog.String("provider", input.Provider))

		return result, nil
	}

	// Completely new user.
	user, err = s.registerOAuthUser(ctx, identity, provider)
	if err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via oauth",
		slog.String("user_id", user.ID.String()),
		slog.String("provider", input.Provider))

	return result, nil
}

// emailPrefix extracts the part before @ from an email address.
func emailPrefix(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}

// registerOAuthUser creates a new user from the verified OAuth identity.
// A duplicate insert means a concurrent login won the race; fall back to the
// row it created.
func (s *Service) registerOAuthUser(ctx context.Context, identity *auth.OAuthIdentity, provider domain.OAuthProvider) (*domain.User, error) {
	name := emailPrefix(identity.Email)
	if identity.Name != nil && *identity.Name != "" {
		name = *identity.Name
	}

	now := time.Now()
	newUser := &domain.User{
		ID:        uuid.New(),
		Email:     identity.Email,
		Name:      name,
		AvatarURL: identity.AvatarURL,
		Provider:  provider,
		OAuthID:   identity.ProviderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	user, err := s.users.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			user, retryErr := s.users.GetByOAuth(ctx, provider, identity.ProviderID)
			if retryErr == nil {
				return user, nil
			}
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth.Login register user: %w", err)
	}

	return user, nil
}
