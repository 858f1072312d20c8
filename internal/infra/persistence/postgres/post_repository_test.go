package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
)

func TestPostRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "alice")
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &entity.Post{UserID: author.ID, Username: author.Username, Text: "hello", Likes: 5}
	require.NoError(t, repo.Create(ctx, post))
	assert.Zero(t, post.Likes)

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, author.ID, got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Zero(t, got.Likes)
	assert.Zero(t, got.Dislikes)

	locked, err := repo.FindByIDForUpdate(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, locked.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	_, err = repo.FindByIDForUpdate(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_CreateRequiresExistingAuthor(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Post{UserID: uuid.New(), Username: "ghost", Text: "hi"})
	assert.Error(t, err)
}

func TestPostRepository_ListOrdering(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	first := seedPost(t, db, alice, "first")
	second := seedPost(t, db, bob, "second")
	third := seedPost(t, db, alice, "third")
	repo := NewPostRepository(db)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	mine, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, third.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	none, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostRepository_UpdateText(t *testing.T) {
	db := newTestDB(t)
	post := seedPost(t, db, seedUser(t, db, "alice"), "before")
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpdateText(ctx, post.ID, "after"))

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)

	assert.ErrorIs(t, repo.UpdateText(ctx, uuid.New(), "x"), repository.ErrPostNotFound)
}

func TestPostRepository_DeleteCascadesReactions(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice, "doomed")
	posts := NewPostRepository(db)
	reactions := NewReactionRepository(db)
	ctx := context.Background()

	require.NoError(t, reactions.Create(ctx, &entity.Reaction{Kind: entity.ReactionLike, PostID: post.ID, UserID: bob.ID}))
	require.NoError(t, reactions.Create(ctx, &entity.Reaction{Kind: entity.ReactionDislike, PostID: post.ID, UserID: alice.ID}))

	require.NoError(t, posts.Delete(ctx, post.ID))

	_, err := posts.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	likes, err := reactions.CountByPost(ctx, entity.ReactionLike, post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)

	dislikes, err := reactions.CountByPost(ctx, entity.ReactionDislike, post.ID)
	require.NoError(t, err)
	assert.Zero(t, dislikes)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID), repository.ErrPostNotFound)
}

func TestPostRepository_AdjustCounters(t *testing.T) {
	db := newTestDB(t)
	post := seedPost(t, db, seedUser(t, db, "alice"), "counted")
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AdjustCounters(ctx, post.ID, 1, 0))
	require.NoError(t, repo.AdjustCounters(ctx, post.ID, 1, 1))
	require.NoError(t, repo.AdjustCounters(ctx, post.ID, -1, 0))
	require.NoError(t, repo.AdjustCounters(ctx, post.ID, 0, 0))

	got, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)
	assert.Equal(t, int64(1), got.Dislikes)

	assert.ErrorIs(t, repo.AdjustCounters(ctx, post.ID, 0, -2), repository.ErrCounterUnderflow)
	assert.ErrorIs(t, repo.AdjustCounters(ctx, uuid.New(), 1, 0), repository.ErrPostNotFound)

	got, err = repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Dislikes)
}
