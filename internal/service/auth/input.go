package auth

import (
	"github.com/forumhq/discuss-backend/internal/domain"
)

// LoginInput holds the parameters for an OAuth login.
type LoginInput struct {
	Provider string
	Code     string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if i.Provider != string(domain.OAuthProviderGithub) {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}
	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks all fields and collects all errors.
func (i RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}

// LogoutInput holds the raw refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
	Everywhere   bool
}

// Validate checks all fields and collects all errors.
func (i LogoutInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
