package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/internal/validate"
)

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	TopicID uuid.UUID `json:"topic_id"`
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Title,
			validation.Required,
			validation.Length(2, 0),
		),
		validation.Field(&i.Content,
			validation.Required,
			validation.Length(10, 0),
		),
		validation.Field(&i.TopicID, validate.RequiredUUID),
	)
}

// DeletePostInput holds the parameters for deleting a post.
type DeletePostInput struct {
	PostID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeletePostInput) Validate() error {
	if i.PostID == uuid.Nil {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}
