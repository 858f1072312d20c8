package repository

import (
	"context"
	"errors"

	"postboard/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReactionNotFound is returned when a record to delete no longer exists.
	ErrReactionNotFound = errors.New("reaction record not found")
	// ErrDuplicateReaction is returned when the (post, user) uniqueness constraint rejects an insert.
	ErrDuplicateReaction = errors.New("reaction record already exists")
)

// ReactionRepository persists like and dislike records.
type ReactionRepository interface {
	// FindState reports which record, if any, the user holds for the post.
	FindState(ctx context.Context, postID, userID uuid.UUID) (entity.ReactionState, error)

	// Create inserts a record of the given kind.
	Create(ctx context.Context, reaction *entity.Reaction) error

	// Delete removes a record of the given kind. It returns ErrReactionNotFound when no row was removed.
	Delete(ctx context.Context, reaction *entity.Reaction) error

	// CountByPost counts the records of one kind referencing the post.
	CountByPost(ctx context.Context, kind entity.ReactionKind, postID uuid.UUID) (int64, error)
}
