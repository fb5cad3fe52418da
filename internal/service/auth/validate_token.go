package auth

import (
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
)

// ValidateToken checks an access token and returns the user ID it carries.
// Used by the HTTP auth middleware on every authenticated request.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
