package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/infra/persistence/model"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post with zeroed counters.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.ErrPostCreationFailed.WrapMessage("failed to generate post id")
		}
		post.ID = id
	}

	post.Likes, post.Dislikes = 0, 0
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WrapMessage("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindByID reads from the primary so counters reflect the latest committed toggle.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		return nil, mapPostLookupError(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDForUpdate takes a row lock on the post for the rest of the transaction.
func (repo *postRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Clauses(lockingClause(repo.db)...).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		return nil, mapPostLookupError(err, "failed to lock post")
	}

	return toPostDomain(&postM), nil
}

// List returns every post, newest first.
func (repo *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	return toPostDomains(postMs), nil
}

// ListByUser returns the posts of one author, newest first.
func (repo *postRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts by user")
	}

	return toPostDomains(postMs), nil
}

// UpdateText replaces the text of a post.
func (repo *postRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Update("text", text)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. like_posts and dislike_posts rows go with it via ON DELETE CASCADE.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// AdjustCounters applies both deltas in one UPDATE guarded against negative results.
func (repo *postRepository) AdjustCounters(ctx context.Context, id uuid.UUID, likesDelta, dislikesDelta int64) error {
	if likesDelta == 0 && dislikesDelta == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Where("likes + ? >= 0 AND dislikes + ? >= 0", likesDelta, dislikesDelta).
		Updates(map[string]any{
			"likes":    gorm.Expr("likes + ?", likesDelta),
			"dislikes": gorm.Expr("dislikes + ?", dislikesDelta),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrCounterUnderflow
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust post counters")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to adjust post counters")
		}
		if count == 0 {
			return repository.ErrPostNotFound
		}

		return repository.ErrCounterUnderflow
	}

	return nil
}

// lockingClause returns SELECT ... FOR UPDATE on dialects with row locks.
func lockingClause(db *gorm.DB) []clause.Expression {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		// SQLite serializes writers at the database level.
		return nil
	}

	return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
}

func mapPostLookupError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrPostNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

func toPostDomain(m *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Text:      m.Text,
		Likes:     m.Likes,
		Dislikes:  m.Dislikes,
		CreatedAt: m.CreatedAt,
	}
}

func toPostDomains(ms []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(ms))
	for _, m := range ms {
		posts = append(posts, toPostDomain(m))
	}

	return posts
}

func fromPostDomain(p *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Username:  p.Username,
		Text:      p.Text,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		CreatedAt: p.CreatedAt,
	}
}
