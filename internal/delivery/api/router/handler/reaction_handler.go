package handler

import (
	"context"
	"log/slog"
	"net/http"

	"postboard/internal/delivery/api/response"
	"postboard/internal/domain/entity"
	"postboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReactionHandlerParams holds dependencies for ReactionHandler, injected by Fx.
type ReactionHandlerParams struct {
	fx.In

	ReactionUC usecase.ReactionUsecase
	Logger     *slog.Logger
}

// ReactionHandler exposes the like and dislike toggles.
type ReactionHandler struct {
	reactionUC usecase.ReactionUsecase
	logger     *slog.Logger
}

// NewReactionHandler is the constructor for ReactionHandler.
func NewReactionHandler(params ReactionHandlerParams) *ReactionHandler {
	return &ReactionHandler{
		reactionUC: params.ReactionUC,
		logger:     params.Logger,
	}
}

// ReactionResponse reports the toggle outcome and the counters after it.
type ReactionResponse struct {
	Message  string `json:"message"`
	State    string `json:"state"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

type toggleFunc func(ctx context.Context, user *entity.User, postID uuid.UUID) (*usecase.ReactionOutput, error)

// Like toggles the caller's like on a post.
func (h *ReactionHandler) Like(c echo.Context) error {
	return h.toggle(c, h.reactionUC.Like)
}

// Dislike toggles the caller's dislike on a post.
func (h *ReactionHandler) Dislike(c echo.Context) error {
	return h.toggle(c, h.reactionUC.Dislike)
}

func (h *ReactionHandler) toggle(c echo.Context, fn toggleFunc) error {
	user, postID, err := callerAndPostID(c)
	if err != nil {
		return err
	}

	out, err := fn(c.Request().Context(), user, postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ReactionResponse{
		Message:  out.Message,
		State:    out.State.String(),
		Likes:    out.Likes,
		Dislikes: out.Dislikes,
	})
}
