package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenRejected is the only failure Verify reports. Structural, signature and expiry
// failures are deliberately indistinguishable to callers.
var ErrTokenRejected = errors.New("token rejected")

// TokenType is the value returned to clients alongside an access token.
const TokenType = "Bearer"

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue creates an access token whose subject is userID.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the subject.
	Verify(token string) (uuid.UUID, error)

	// TTL returns the fixed lifetime of issued tokens.
	TTL() time.Duration
}
