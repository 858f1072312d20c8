package entity

import "github.com/google/uuid"

// ReactionKind names one of the two interaction record tables.
type ReactionKind string

const (
	// ReactionLike marks a like record.
	ReactionLike ReactionKind = "like"
	// ReactionDislike marks a dislike record.
	ReactionDislike ReactionKind = "dislike"
)

// String returns the string representation of the ReactionKind.
func (k ReactionKind) String() string {
	return string(k)
}

// IsValid checks if the ReactionKind is a known value.
func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionDislike:
		return true
	default:
		return false
	}
}

// Opposite returns the kind that is mutually exclusive with k.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}

	return ReactionLike
}

// ReactionState is the affinity of one user toward one post.
type ReactionState string

const (
	// StateNeutral means the user holds no record for the post.
	StateNeutral ReactionState = "neutral"
	// StateLiked means a like record exists.
	StateLiked ReactionState = "liked"
	// StateDisliked means a dislike record exists.
	StateDisliked ReactionState = "disliked"
)

// String returns the string representation of the ReactionState.
func (s ReactionState) String() string {
	return string(s)
}

// Holds reports whether the state is backed by a record of the given kind.
func (s ReactionState) Holds(kind ReactionKind) bool {
	return s == StateFor(kind)
}

// StateFor returns the state a record of the given kind represents.
func StateFor(kind ReactionKind) ReactionState {
	if kind == ReactionDislike {
		return StateDisliked
	}

	return StateLiked
}

// Reaction is a single like or dislike record. The pair (PostID, UserID) is unique per kind.
type Reaction struct {
	Kind   ReactionKind
	PostID uuid.UUID
	UserID uuid.UUID
}
