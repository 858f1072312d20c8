// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"postboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// Active defaults to true when nil.
	Active *bool
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// TokenOutput carries an access token and its type.
type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// AuthUsecase covers registration, credential exchange and bearer token resolution.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	// Refresh issues a new token for an already authenticated user.
	Refresh(ctx context.Context, user *entity.User) (*TokenOutput, error)
	// Authenticate resolves a bearer token to an active user or fails with ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
