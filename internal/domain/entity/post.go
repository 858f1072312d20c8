package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a text entry authored by a user.
// Likes and Dislikes are denormalized counters of the reaction records that reference the post;
// only the reaction use case changes them.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner of the post.
	Username  string    // Owner username at the time of posting.
	Text      string
	Likes     int64
	Dislikes  int64
	CreatedAt time.Time
}

// OwnedBy reports whether the given user authored the post.
func (p *Post) OwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
