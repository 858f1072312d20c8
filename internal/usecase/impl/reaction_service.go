package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/errors"
	"postboard/internal/usecase"
)

type toggleMessages struct {
	added   string
	removed string
}

var reactionMessages = map[entity.ReactionKind]toggleMessages{
	entity.ReactionLike:    {added: "post liked", removed: "post un-liked"},
	entity.ReactionDislike: {added: "post disliked", removed: "post un-disliked"},
}

// reactionService implements the ReactionUsecase interface.
type reactionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReactionServiceParams holds dependencies for ReactionService, injected by Fx.
type ReactionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewReactionService is the constructor for reactionService.
func NewReactionService(params ReactionServiceParams) usecase.ReactionUsecase {
	return &reactionService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *reactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Like toggles the like of user on the post, removing a dislike first if one exists.
func (srv *reactionService) Like(ctx context.Context, user *entity.User, postID uuid.UUID) (*usecase.ReactionOutput, error) {
	return srv.toggle(ctx, user, postID, entity.ReactionLike)
}

// Dislike toggles the dislike of user on the post, removing a like first if one exists.
func (srv *reactionService) Dislike(ctx context.Context, user *entity.User, postID uuid.UUID) (*usecase.ReactionOutput, error) {
	return srv.toggle(ctx, user, postID, entity.ReactionDislike)
}

// toggle applies one transition of the (user, post) state machine.
// The state observed before locking the post is the state the request acts upon; if another
// request changed it in the meantime the transition is refused with ErrReactionConflict.
func (srv *reactionService) toggle(ctx context.Context, user *entity.User, postID uuid.UUID, kind entity.ReactionKind) (*usecase.ReactionOutput, error) {
	var out *usecase.ReactionOutput
	applied := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()
		reactionRepo := repoFactory.ReactionRepo()

		observed, err := reactionRepo.FindState(ctx, postID, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to read reaction state")
		}

		if _, err := postRepo.FindByIDForUpdate(ctx, postID); err != nil {
			return errors.Wrap(mapPostError(err), "failed to lock post")
		}

		current, err := reactionRepo.FindState(ctx, postID, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to re-read reaction state")
		}
		if current != observed {
			return reactionConflict(
				errors.Errorf("state changed from %s to %s", observed, current),
				"concurrent reaction on the same post",
			)
		}

		final, message, err := applyTransition(ctx, postRepo, reactionRepo, current, kind, postID, user.ID)
		if err != nil {
			return err
		}

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			return errors.Wrap(mapPostError(err), "failed to reload post counters")
		}

		out = &usecase.ReactionOutput{
			Message:  message,
			State:    final,
			Likes:    post.Likes,
			Dislikes: post.Dislikes,
		}
		applied = true

		return nil
	})
	if err != nil && applied {
		// The transition was written but the commit failed.
		err = reactionConflict(err, "failed to commit "+kind.String())
	}
	if err != nil {
		srv.log(ctx).Warn("Reaction failed",
			slog.String("kind", kind.String()),
			slog.Any("postID", postID),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to apply "+kind.String())
	}

	srv.log(ctx).Info("Reaction applied",
		slog.String("kind", kind.String()),
		slog.Any("postID", postID),
		slog.String("state", out.State.String()),
	)

	return out, nil
}

// applyTransition writes the record changes and the matching counter deltas.
func applyTransition(
	ctx context.Context,
	postRepo repository.PostRepository,
	reactionRepo repository.ReactionRepository,
	current entity.ReactionState,
	kind entity.ReactionKind,
	postID, userID uuid.UUID,
) (entity.ReactionState, string, error) {
	messages := reactionMessages[kind]
	deltas := map[entity.ReactionKind]int64{}

	var final entity.ReactionState
	var message string

	if current.Holds(kind) {
		if err := reactionRepo.Delete(ctx, &entity.Reaction{Kind: kind, PostID: postID, UserID: userID}); err != nil {
			return current, "", reactionConflict(err, "failed to remove "+kind.String())
		}
		deltas[kind]--
		final, message = entity.StateNeutral, messages.removed
	} else {
		opposite := kind.Opposite()
		if current.Holds(opposite) {
			if err := reactionRepo.Delete(ctx, &entity.Reaction{Kind: opposite, PostID: postID, UserID: userID}); err != nil {
				return current, "", reactionConflict(err, "failed to remove "+opposite.String())
			}
			deltas[opposite]--
		}

		if err := reactionRepo.Create(ctx, &entity.Reaction{Kind: kind, PostID: postID, UserID: userID}); err != nil {
			return current, "", reactionConflict(err, "failed to add "+kind.String())
		}
		deltas[kind]++
		final, message = entity.StateFor(kind), messages.added
	}

	if err := postRepo.AdjustCounters(ctx, postID, deltas[entity.ReactionLike], deltas[entity.ReactionDislike]); err != nil {
		return current, "", reactionConflict(err, "failed to adjust counters")
	}

	return final, message, nil
}

// reactionConflict reports ErrReactionConflict while keeping the cause for logs.
func reactionConflict(cause error, msg string) error {
	return errors.Wrap(errors.Join(domainerrors.ErrReactionConflict, cause), msg)
}
