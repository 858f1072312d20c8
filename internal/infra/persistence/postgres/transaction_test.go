package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain/entity"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "hello")
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.PostRepo().FindByIDForUpdate(ctx, post.ID); err != nil {
			return err
		}
		if err := f.ReactionRepo().Create(ctx, &entity.Reaction{Kind: entity.ReactionLike, PostID: post.ID, UserID: alice.ID}); err != nil {
			return err
		}

		return f.PostRepo().AdjustCounters(ctx, post.ID, 1, 0)
	})
	require.NoError(t, err)

	got, err := NewPostRepository(db).FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)

	count, err := NewReactionRepository(db).CountByPost(ctx, entity.ReactionLike, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "hello")
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ReactionRepo().Create(ctx, &entity.Reaction{Kind: entity.ReactionLike, PostID: post.ID, UserID: alice.ID}); err != nil {
			return err
		}
		if err := f.PostRepo().AdjustCounters(ctx, post.ID, 1, 0); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := NewPostRepository(db).FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)

	state, err := NewReactionRepository(db).FindState(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateNeutral, state)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "hello")
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.PostRepo().AdjustCounters(ctx, post.ID, 1, 0)
			panic("boom")
		})
	})

	got, err := NewPostRepository(db).FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Likes)
}
