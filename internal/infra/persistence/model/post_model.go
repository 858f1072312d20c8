package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. Likes and Dislikes cache the row counts of
// like_posts and dislike_posts for the post.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Username  string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:varchar(2000);not null"`
	Likes     int64     `gorm:"not null;default:0;check:chk_posts_likes,likes >= 0"`
	Dislikes  int64     `gorm:"not null;default:0;check:chk_posts_dislikes,dislikes >= 0"`
	CreatedAt time.Time `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
