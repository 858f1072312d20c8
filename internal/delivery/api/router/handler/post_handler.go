package handler

import (
	"log/slog"
	"net/http"

	"postboard/internal/delivery/api/response"
	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post endpoints. Every route sits behind the auth gate.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// PostTextRequest represents the body of post creation and edits.
type PostTextRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// PostListResponse wraps a list of posts.
type PostListResponse struct {
	Posts []*PostResponse `json:"posts"`
}

// UserPostsResponse lists the posts of the caller. Message is set when there are none.
type UserPostsResponse struct {
	Message string          `json:"message,omitempty"`
	User    *UserResponse   `json:"user"`
	Posts   []*PostResponse `json:"posts"`
}

// PostMessageResponse reports the outcome of a write together with the post.
type PostMessageResponse struct {
	Message string        `json:"message"`
	Post    *PostResponse `json:"post"`
}

// PostInfoResponse greets a caller that passed the auth gate.
type PostInfoResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Info confirms the posts routes are reachable with the caller's token.
func (h *PostHandler) Info(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &PostInfoResponse{
		Message:  "posts service is reachable",
		Username: user.Username,
	})
}

// List returns every post, newest first.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postUC.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &PostListResponse{Posts: newPostResponses(posts)})
}

// Mine returns the caller's posts.
func (h *PostHandler) Mine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	posts, err := h.postUC.ListUserPosts(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	out := &UserPostsResponse{
		User:  newUserResponse(user),
		Posts: newPostResponses(posts),
	}
	if len(posts) == 0 {
		out.Message = "user has not posted anything"
	}

	return response.Success(c, http.StatusOK, out)
}

// Create publishes a post owned by the caller.
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PostTextRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), user, &usecase.CreatePostInput{Text: req.Text})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &PostMessageResponse{
		Message: "post published",
		Post:    newPostResponse(post),
	})
}

// Edit replaces the text of a post owned by the caller.
func (h *PostHandler) Edit(c echo.Context) error {
	user, postID, err := callerAndPostID(c)
	if err != nil {
		return err
	}

	var req PostTextRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.postUC.EditPost(c.Request().Context(), user, &usecase.EditPostInput{
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &PostMessageResponse{
		Message: "post updated",
		Post:    newPostResponse(post),
	})
}

// Delete removes a post owned by the caller together with its reactions.
func (h *PostHandler) Delete(c echo.Context) error {
	user, postID, err := callerAndPostID(c)
	if err != nil {
		return err
	}

	if err := h.postUC.DeletePost(c.Request().Context(), user, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "post deleted"})
}

// currentUser returns the user stored by the auth gate.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return user, nil
}

// callerAndPostID returns the authenticated user and the :id path parameter.
func callerAndPostID(c echo.Context) (*entity.User, uuid.UUID, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, uuid.Nil, err
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid post id"))
	}

	return user, postID, nil
}
