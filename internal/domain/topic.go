package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a discussion board identified by a globally unique, user-chosen
// slug. The slug and the owner are immutable after creation; topics have no
// edit operation.
type Topic struct {
	ID          uuid.UUID
	Slug        string
	Description string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID is the recorded owner of the topic.
// Only the owner may delete it; there is no moderator override.
func (t *Topic) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && t.UserID == userID
}

// TopicWithCount is a read-model projection of a topic and its post count,
// used by listing and trending queries.
type TopicWithCount struct {
	Topic
	PostCount int
}
