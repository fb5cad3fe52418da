package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/validate"
)

// CreateCommentInput holds the parameters for creating a comment.
// ParentID is nil for top-level comments.
type CreateCommentInput struct {
	Content  string     `json:"content"`
	PostID   uuid.UUID  `json:"post_id"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Content,
			validation.Required,
			validation.Length(2, 400),
		),
		validation.Field(&i.PostID, validate.RequiredUUID),
	)
}
