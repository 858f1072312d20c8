package handler

import (
	"log/slog"
	"net/http"

	"postboard/internal/delivery/api/response"
	"postboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and token endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account.
// bcrypt only reads the first 72 bytes of a password, longer ones are refused.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Activity *bool  `json:"activity"`
}

// LoginRequest represents the credentials of a JSON or form login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// AuthInfoResponse describes the authentication entry point.
type AuthInfoResponse struct {
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
}

// Info reports that the authentication routes are reachable.
func (h *AuthHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, &AuthInfoResponse{
		Message:       "auth service is reachable",
		Authenticated: false,
	})
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Active:   req.Activity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &RegisterResponse{
		Message: "user registered",
		User:    newUserResponse(output.User),
	})
}

// Login exchanges JSON credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	return h.login(c, &req)
}

// LoginForm exchanges application/x-www-form-urlencoded credentials for an access token.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	req := LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}

	return h.login(c, &req)
}

func (h *AuthHandler) login(c echo.Context, req *LoginRequest) error {
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output))
}

// Refresh issues a new token for the authenticated caller.
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	output, err := h.authUC.Refresh(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(output))
}
