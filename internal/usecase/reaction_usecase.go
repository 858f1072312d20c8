package usecase

import (
	"context"

	"github.com/google/uuid"

	"postboard/internal/domain/entity"
)

// ReactionOutput reports the outcome of a toggle and the post counters after it.
type ReactionOutput struct {
	Message  string
	State    entity.ReactionState
	Likes    int64
	Dislikes int64
}

// ReactionUsecase toggles likes and dislikes. Like and dislike are mutually exclusive per user and post.
type ReactionUsecase interface {
	Like(ctx context.Context, user *entity.User, postID uuid.UUID) (*ReactionOutput, error)
	Dislike(ctx context.Context, user *entity.User, postID uuid.UUID) (*ReactionOutput, error)
}
