package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a top-level contribution within a topic. Posts are created once
// and never edited; deletion cascades to the post's comments.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	UserID    uuid.UUID
	TopicID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID is the recorded owner of the post.
func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.UserID == userID
}

// PostWithData is a read-model projection of a post together with the data
// the list views need: the parent topic's slug, the author's display name
// and the comment count.
type PostWithData struct {
	Post
	TopicSlug    string
	AuthorName   string
	CommentCount int
}
