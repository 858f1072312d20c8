// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, algorithm-tagged digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest to see if they match.
	// Digests written by older schemes are still accepted.
	Check(password, hash string) bool

	// NeedsRehash reports whether a digest was produced by a legacy scheme or weaker parameters.
	NeedsRehash(hash string) bool
}
