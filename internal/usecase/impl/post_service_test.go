package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	mockRepo "postboard/internal/mocks/repository"
	"postboard/internal/usecase"
)

type postServiceFixtures struct {
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	postRepo  *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)

	svc := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		Logger:    discardLogger(),
	})

	return postServiceFixtures{service: svc, txManager: txManager, postRepo: postRepo}
}

func TestPostService_CreatePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Username: "alice"}

	fx.postRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Post) bool {
			return p.UserID == author.ID && p.Username == "alice" && p.Text == "hello"
		})).
		Run(func(_ context.Context, p *entity.Post) { p.ID = uuid.New() }).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, author, &usecase.CreatePostInput{Text: "hello"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, author.ID, post.UserID)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Username: "alice"}

	_, err := fx.service.CreatePost(ctx, author, &usecase.CreatePostInput{Text: "   "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.CreatePost(ctx, author, &usecase.CreatePostInput{Text: strings.Repeat("é", MaxPostLength+1)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_CreatePost_MaxLengthCountsCharacters(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Username: "alice"}
	text := strings.Repeat("é", MaxPostLength)

	fx.postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

	_, err := fx.service.CreatePost(ctx, author, &usecase.CreatePostInput{Text: text})
	assert.NoError(t, err)
}

func TestPostService_ListPosts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	posts := []*entity.Post{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.postRepo.EXPECT().List(ctx).Return(posts, nil)

	got, err := fx.service.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_ListUserPosts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.postRepo.EXPECT().ListByUser(ctx, user.ID).Return([]*entity.Post{}, nil)

	got, err := fx.service.ListUserPosts(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostService_EditPost_Owner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(txPostRepo)
		txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(&entity.Post{ID: postID, UserID: owner.ID, Text: "old"}, nil)
		txPostRepo.EXPECT().UpdateText(ctx, postID, "new").Return(nil)
	})

	post, err := fx.service.EditPost(ctx, owner, &usecase.EditPostInput{PostID: postID, Text: "new"})

	require.NoError(t, err)
	assert.Equal(t, "new", post.Text)
}

func TestPostService_EditPost_NotOwnerNeverWrites(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	intruder := &entity.User{ID: uuid.New()}
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(txPostRepo)
		txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New(), Text: "old"}, nil)
	})

	_, err := fx.service.EditPost(ctx, intruder, &usecase.EditPostInput{PostID: postID, Text: "new"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostOwnershipViolation))
}

func TestPostService_EditPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPostRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().PostRepo().Return(txPostRepo)
		txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(nil, repository.ErrPostNotFound)
	})

	_, err := fx.service.EditPost(ctx, &entity.User{ID: uuid.New()}, &usecase.EditPostInput{PostID: postID, Text: "new"})

	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}
	postID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestPostService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPostRepo := mockRepo.NewMockPostRepository(t)
			factory.EXPECT().PostRepo().Return(txPostRepo)
			txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(&entity.Post{ID: postID, UserID: owner.ID}, nil)
			txPostRepo.EXPECT().Delete(ctx, postID).Return(nil)
		})

		assert.NoError(t, fx.service.DeletePost(ctx, owner, postID))
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestPostService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPostRepo := mockRepo.NewMockPostRepository(t)
			factory.EXPECT().PostRepo().Return(txPostRepo)
			txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)
		})

		err := fx.service.DeletePost(ctx, owner, postID)
		assert.True(t, errors.Is(err, domainerrors.ErrPostOwnershipViolation))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestPostService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txPostRepo := mockRepo.NewMockPostRepository(t)
			factory.EXPECT().PostRepo().Return(txPostRepo)
			txPostRepo.EXPECT().FindByIDForUpdate(ctx, postID).Return(nil, repository.ErrPostNotFound)
		})

		err := fx.service.DeletePost(ctx, owner, postID)
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})
}
