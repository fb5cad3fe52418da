package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/forumhq/discuss-backend/internal/auth"
	"github.com/forumhq/discuss-backend/internal/domain"
)

// Logout revokes the presented refresh token. With Everywhere set it
// revokes every live session of the token's user. Unknown tokens succeed
// silently so logout stays idempotent.
func (s *Service) Logout(ctx context.Context, input LogoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if input.Everywhere {
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return fmt.Errorf("auth.Logout revoke all: %w", err)
		}
		return nil
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return fmt.Errorf("auth.Logout revoke token: %w", err)
	}
	return nil
}
