package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionKind_Opposite(t *testing.T) {
	assert.Equal(t, ReactionDislike, ReactionLike.Opposite())
	assert.Equal(t, ReactionLike, ReactionDislike.Opposite())
}

func TestReactionKind_IsValid(t *testing.T) {
	assert.True(t, ReactionLike.IsValid())
	assert.True(t, ReactionDislike.IsValid())
	assert.False(t, ReactionKind("love").IsValid())
}

func TestReactionState_Holds(t *testing.T) {
	tests := []struct {
		state ReactionState
		kind  ReactionKind
		want  bool
	}{
		{StateLiked, ReactionLike, true},
		{StateLiked, ReactionDislike, false},
		{StateDisliked, ReactionDislike, true},
		{StateDisliked, ReactionLike, false},
		{StateNeutral, ReactionLike, false},
		{StateNeutral, ReactionDislike, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String()+"/"+tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Holds(tt.kind))
		})
	}
}
