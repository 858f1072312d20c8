package usecase

import (
	"context"

	"github.com/google/uuid"

	"postboard/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Text string
}

// EditPostInput defines the replacement text of a post.
type EditPostInput struct {
	PostID uuid.UUID
	Text   string
}

// PostUsecase defines post publishing and the owner-only edit and delete operations.
type PostUsecase interface {
	CreatePost(ctx context.Context, user *entity.User, input *CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListUserPosts(ctx context.Context, user *entity.User) ([]*entity.Post, error)
	EditPost(ctx context.Context, user *entity.User, input *EditPostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, user *entity.User, postID uuid.UUID) error
}
