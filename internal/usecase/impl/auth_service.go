// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.uber.org/fx"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/errors"
	"postboard/internal/usecase"
)

// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	// dummyDigest is checked for unknown usernames so they cost as much as a wrong password.
	dummyOnce   sync.Once
	dummyDigest string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user after checking that neither the username nor the email is taken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username, email and password are required")
	}
	if len(input.Password) > MaxPasswordBytes {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password is longer than 72 bytes"), "password too long")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	newUser := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Active:       active,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureAbsent(userRepo.FindByUsername(ctx, username)); err != nil {
			if errors.Is(err, errTaken) {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
			}

			return errors.Wrap(err, "failed to check username")
		}

		if err := ensureAbsent(userRepo.FindByEmail(ctx, email)); err != nil {
			if errors.Is(err, errTaken) {
				return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
			}

			return errors.Wrap(err, "failed to check email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

var errTaken = errors.New("already taken")

// ensureAbsent turns a lookup result into nil when nothing was found.
func ensureAbsent(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return errTaken
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// Login exchanges a username and password for an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.timingDigest())
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if !user.Active {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "inactive"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user inactive")
	}

	if srv.hasher.NeedsRehash(user.PasswordHash) {
		srv.log(ctx).Warn("Password digest uses a legacy scheme", slog.Any("userID", user.ID))
	}

	out, err := srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return out, nil
}

// timingDigest returns a digest produced at the configured cost, hashed on first use.
func (srv *authService) timingDigest() string {
	srv.dummyOnce.Do(func() {
		digest, err := srv.hasher.Hash("postboard-unknown-user")
		if err != nil {
			srv.logger.Warn("Failed to prepare login timing digest", slog.Any("error", err))

			return
		}
		srv.dummyDigest = digest
	})

	return srv.dummyDigest
}

// Refresh issues a fresh token for a user that already passed the auth gate.
func (srv *authService) Refresh(ctx context.Context, user *entity.User) (*usecase.TokenOutput, error) {
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user")
	}

	srv.log(ctx).Debug("Refreshing access token", slog.Any("userID", user.ID))

	return srv.issue(user)
}

// Authenticate resolves a bearer token to an active user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.Active {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "user inactive")
	}

	return user, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   service.TokenType,
		ExpiresIn:   srv.tokenService.TTL(),
	}, nil
}
