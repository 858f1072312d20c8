package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/infra/persistence/model"
)

// reactionRepository stores likes in like_posts and dislikes in dislike_posts.
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository is the constructor for reactionRepository.
func NewReactionRepository(db *gorm.DB) repository.ReactionRepository {
	return &reactionRepository{db: db}
}

// FindState checks both tables for a record of (postID, userID).
func (repo *reactionRepository) FindState(ctx context.Context, postID, userID uuid.UUID) (entity.ReactionState, error) {
	liked, err := repo.exists(ctx, entity.ReactionLike, postID, userID)
	if err != nil {
		return entity.StateNeutral, err
	}

	disliked, err := repo.exists(ctx, entity.ReactionDislike, postID, userID)
	if err != nil {
		return entity.StateNeutral, err
	}

	switch {
	case liked && disliked:
		return entity.StateNeutral, domainerrors.NewDatabaseExecuteError(
			errors.New("both like and dislike records exist"), "inconsistent reaction state")
	case liked:
		return entity.StateLiked, nil
	case disliked:
		return entity.StateDisliked, nil
	default:
		return entity.StateNeutral, nil
	}
}

// Create inserts a record. The composite primary key rejects a second record of the same kind.
func (repo *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	record, err := newReactionModel(reaction.Kind, reaction.PostID, reaction.UserID)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReaction
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+reaction.Kind.String())
	}

	return nil
}

// Delete removes a record and fails with ErrReactionNotFound when nothing was removed.
func (repo *reactionRepository) Delete(ctx context.Context, reaction *entity.Reaction) error {
	record, err := newReactionModel(reaction.Kind, reaction.PostID, reaction.UserID)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", reaction.PostID, reaction.UserID).
		Delete(record)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+reaction.Kind.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrReactionNotFound
	}

	return nil
}

// CountByPost counts the records of one kind referencing the post.
func (repo *reactionRepository) CountByPost(ctx context.Context, kind entity.ReactionKind, postID uuid.UUID) (int64, error) {
	record, err := newReactionModel(kind, uuid.Nil, uuid.Nil)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(record).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count "+kind.String()+" records")
	}

	return count, nil
}

func (repo *reactionRepository) exists(ctx context.Context, kind entity.ReactionKind, postID, userID uuid.UUID) (bool, error) {
	record, err := newReactionModel(kind, uuid.Nil, uuid.Nil)
	if err != nil {
		return false, err
	}

	var count int64
	err = repo.db.WithContext(ctx).
		Model(record).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read "+kind.String()+" record")
	}

	return count > 0, nil
}

func newReactionModel(kind entity.ReactionKind, postID, userID uuid.UUID) (any, error) {
	switch kind {
	case entity.ReactionLike:
		return &model.LikeModel{PostID: postID, UserID: userID}, nil
	case entity.ReactionDislike:
		return &model.DislikeModel{PostID: postID, UserID: userID}, nil
	default:
		return nil, errors.Errorf("unknown reaction kind %q", kind)
	}
}
