package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'like_posts' table. The composite primary key allows one like per user per post.
type LikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "like_posts"
}

// DislikeModel mirrors the 'dislike_posts' table.
type DislikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DislikeModel) TableName() string {
	return "dislike_posts"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&PostModel{},
		&LikeModel{},
		&DislikeModel{},
	}
}
