package handler

import (
	"time"

	"postboard/internal/domain/entity"
	"postboard/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. The password digest never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// TokenResponse carries an access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

func newTokenResponse(out *usecase.TokenOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   int64(out.ExpiresIn / time.Second),
	}
}

// PostResponse is the public view of a post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Likes     int64     `json:"likes"`
	Dislikes  int64     `json:"dislikes"`
	CreatedAt time.Time `json:"created_at"`
}

func newPostResponse(post *entity.Post) *PostResponse {
	return &PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  post.Username,
		Text:      post.Text,
		Likes:     post.Likes,
		Dislikes:  post.Dislikes,
		CreatedAt: post.CreatedAt,
	}
}

func newPostResponses(posts []*entity.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, newPostResponse(post))
	}

	return out
}

// MessageResponse is returned by endpoints that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}
