package repository

import (
	"context"
	"errors"

	"postboard/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPostNotFound is returned when a post id does not resolve.
	ErrPostNotFound = errors.New("post not found")
	// ErrCounterUnderflow is returned when a counter update would make likes or dislikes negative.
	ErrCounterUnderflow = errors.New("reaction counter would become negative")
)

// PostRepository defines the persistence operations for posts and their aggregate counters.
type PostRepository interface {
	// Create persists a new post with zeroed counters.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post from the primary database.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByIDForUpdate retrieves a post and holds a row lock until the surrounding transaction ends.
	// It must be called inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// List returns every post, newest first.
	List(ctx context.Context) ([]*entity.Post, error)

	// ListByUser returns the posts authored by one user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error)

	// UpdateText replaces the text of a post.
	UpdateText(ctx context.Context, id uuid.UUID, text string) error

	// Delete removes a post. Reaction records cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustCounters applies relative deltas to likes and dislikes in a single statement.
	// It returns ErrCounterUnderflow instead of letting a counter drop below zero.
	AdjustCounters(ctx context.Context, id uuid.UUID, likesDelta, dislikesDelta int64) error
}
