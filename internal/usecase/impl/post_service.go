package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/usecase"
)

// MaxPostLength is the longest post text accepted, counted in characters.
const MaxPostLength = 2000

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a post owned by user.
func (srv *postService) CreatePost(ctx context.Context, user *entity.User, input *usecase.CreatePostInput) (*entity.Post, error) {
	if err := validatePostText(input.Text); err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:   user.ID,
		Username: user.Username,
		Text:     input.Text,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("userID", user.ID))

	return post, nil
}

// ListPosts returns every post, newest first.
func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// ListUserPosts returns the posts authored by user, newest first.
func (srv *postService) ListUserPosts(ctx context.Context, user *entity.User) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user posts")
	}

	return posts, nil
}

// EditPost replaces the text of a post. Ownership is verified before anything is written.
func (srv *postService) EditPost(ctx context.Context, user *entity.User, input *usecase.EditPostInput) (*entity.Post, error) {
	if err := validatePostText(input.Text); err != nil {
		return nil, err
	}

	var edited *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := srv.loadOwnedPost(ctx, postRepo, user, input.PostID)
		if err != nil {
			return err
		}

		if err := postRepo.UpdateText(ctx, post.ID, input.Text); err != nil {
			return errors.Wrap(mapPostError(err), "failed to update post text")
		}

		post.Text = input.Text
		edited = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Edit post failed", slog.Any("postID", input.PostID), slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to edit post")
	}

	srv.log(ctx).Info("Post edited", slog.Any("postID", edited.ID))

	return edited, nil
}

// DeletePost removes a post owned by user together with its reaction records.
func (srv *postService) DeletePost(ctx context.Context, user *entity.User, postID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		if _, err := srv.loadOwnedPost(ctx, postRepo, user, postID); err != nil {
			return err
		}

		if err := postRepo.Delete(ctx, postID); err != nil {
			return errors.Wrap(mapPostError(err), "failed to delete post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Delete post failed", slog.Any("postID", postID), slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}

// loadOwnedPost locks the post and checks that user authored it.
func (srv *postService) loadOwnedPost(ctx context.Context, postRepo repository.PostRepository, user *entity.User, postID uuid.UUID) (*entity.Post, error) {
	post, err := postRepo.FindByIDForUpdate(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(mapPostError(err), "failed to load post")
	}

	if !post.OwnedBy(user.ID) {
		return nil, errors.Wrap(domainerrors.ErrPostOwnershipViolation, "post belongs to another user")
	}

	return post, nil
}

// mapPostError converts repository sentinels into errors carrying an HTTP status.
func mapPostError(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return domainerrors.ErrPostNotFound
	}

	return err
}

func validatePostText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "post text is required")
	}

	if utf8.RuneCountInString(text) > MaxPostLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "post text is too long")
	}

	return nil
}
