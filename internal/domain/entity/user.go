// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can author posts and react to posts of others.
type User struct {
	ID           uuid.UUID // Immutable identifier, the subject of issued tokens.
	Username     string    // Unique login name, also copied onto authored posts.
	Email        string    // Unique contact email.
	PasswordHash string    // Algorithm-tagged digest produced by the PasswordHasher.
	Active       bool      // Inactive accounts cannot pass the auth gate.
	CreatedAt    time.Time // Timestamp of registration.
}
