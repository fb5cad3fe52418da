package topic

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/forumhq/discuss-backend/internal/domain"
	"github.com/forumhq/discuss-backend/internal/validate"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	return validate.Struct(&i,
		validation.Field(&i.Slug,
			validation.Required,
			validation.Length(2, 100),
			validation.Match(slugPattern).Error("must contain only lowercase letters and digits"),
		),
		validation.Field(&i.Description,
			validation.Required,
			validation.Length(5, 500),
		),
	)
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}
