// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"postboard/config"
	"postboard/internal/domain/service"
)

const (
	pbkdf2SHA256Prefix = "$pbkdf2-sha256$"
	argon2idPrefix     = "$argon2id$"
	pbkdf2KeyLen       = 32
)

// passlib writes salts and checksums in "adapted base64": '+' becomes '.', no padding.
var adaptedBase64 = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./",
).WithPadding(base64.NoPadding)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Digests written by pbkdf2-sha256 and argon2id are still verified so older accounts can log in.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, clamped to bcrypt's range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a stored digest.
func (h *bcryptHasher) Check(password, hash string) bool {
	switch {
	case strings.HasPrefix(hash, pbkdf2SHA256Prefix):
		return checkPBKDF2SHA256(password, hash)
	case strings.HasPrefix(hash, argon2idPrefix):
		return checkArgon2id(password, hash)
	default:
		// err is nil if the password and hash match.
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
}

// NeedsRehash reports digests that are not bcrypt at the configured cost.
func (h *bcryptHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}

	return cost != h.cost
}

// checkPBKDF2SHA256 verifies $pbkdf2-sha256$<rounds>$<salt>$<checksum>.
func checkPBKDF2SHA256(password, hash string) bool {
	parts := strings.Split(strings.TrimPrefix(hash, pbkdf2SHA256Prefix), "$")
	if len(parts) != 3 {
		return false
	}

	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return false
	}

	salt, err := adaptedBase64.DecodeString(parts[1])
	if err != nil {
		return false
	}

	want, err := adaptedBase64.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, rounds, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}

// checkArgon2id verifies a PHC string $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<hash>.
func checkArgon2id(password, hash string) bool {
	parts := strings.Split(strings.TrimPrefix(hash, argon2idPrefix), "$")
	if len(parts) != 4 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[0], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[1], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false
	}
	if iterations == 0 || threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}
