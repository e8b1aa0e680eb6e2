package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactionsLike(t *testing.T) {
	assert := assert.New(t)

	t.Run("neutral to liked", func(t *testing.T) {
		r := Reactions{}
		state := r.Like("u1")
		assert.Equal(ReactionLiked, state)
		assert.Equal([]string{"u1"}, r.Likes)
		assert.Empty(r.DisLikes)
	})

	t.Run("liked toggles back to neutral", func(t *testing.T) {
		r := Reactions{}
		r.Like("u1")
		state := r.Like("u1")
		assert.Equal(ReactionNeutral, state)
		assert.Empty(r.Likes)
		assert.Empty(r.DisLikes)
	})

	t.Run("disliked switches to liked", func(t *testing.T) {
		r := Reactions{DisLikes: []string{"u1"}}
		state := r.Like("u1")
		assert.Equal(ReactionLiked, state)
		assert.Equal([]string{"u1"}, r.Likes)
		assert.Empty(r.DisLikes)
	})
}

func TestReactionsDislike(t *testing.T) {
	assert := assert.New(t)

	t.Run("neutral to disliked", func(t *testing.T) {
		r := Reactions{}
		state := r.Dislike("u1")
		assert.Equal(ReactionDisliked, state)
		assert.Equal([]string{"u1"}, r.DisLikes)
		assert.Empty(r.Likes)
	})

	t.Run("disliked toggles back to neutral", func(t *testing.T) {
		r := Reactions{DisLikes: []string{"u1"}}
		state := r.Dislike("u1")
		assert.Equal(ReactionNeutral, state)
		assert.Empty(r.DisLikes)
	})

	t.Run("liked switches to disliked", func(t *testing.T) {
		r := Reactions{Likes: []string{"u1"}}
		state := r.Dislike("u1")
		assert.Equal(ReactionDisliked, state)
		assert.Equal([]string{"u1"}, r.DisLikes)
		assert.Empty(r.Likes)
	})
}

// Membership in Likes and DisLikes must stay mutually exclusive under any
// sequence of transitions.
func TestReactionsMutualExclusion(t *testing.T) {
	r := Reactions{}
	ops := []func(string) ReactionState{
		r.Like, r.Dislike, r.Dislike, r.Like, r.Like, r.Dislike,
	}
	for i, op := range ops {
		op("u1")
		inLikes := r.StateFor("u1") == ReactionLiked
		inDislikes := r.StateFor("u1") == ReactionDisliked
		assert.False(t, inLikes && inDislikes, "step %d: user in both sets", i)
		for _, id := range r.Likes {
			assert.NotContains(t, r.DisLikes, id, "step %d", i)
		}
	}
}

// The per-user state of one user must never leak into another user's state.
func TestReactionsPerUserIsolation(t *testing.T) {
	assert := assert.New(t)

	r := Reactions{}
	r.Like("u1")
	r.Dislike("u2")

	assert.Equal(ReactionLiked, r.StateFor("u1"))
	assert.Equal(ReactionDisliked, r.StateFor("u2"))
	assert.Equal(ReactionNeutral, r.StateFor("u3"))

	// u2 liking must not disturb u1
	r.Like("u2")
	assert.Equal(ReactionLiked, r.StateFor("u1"))
	assert.Equal(ReactionLiked, r.StateFor("u2"))
	assert.ElementsMatch([]string{"u1", "u2"}, r.Likes)
	assert.Empty(r.DisLikes)
}

func TestReactionsStateCycle(t *testing.T) {
	// neutral -> liked -> disliked -> neutral is fully cyclic
	r := Reactions{}
	assert.Equal(t, ReactionLiked, r.Like("u1"))
	assert.Equal(t, ReactionDisliked, r.Dislike("u1"))
	assert.Equal(t, ReactionNeutral, r.Dislike("u1"))
	assert.Empty(t, r.Likes)
	assert.Empty(t, r.DisLikes)
}

func TestReactionsNoDuplicates(t *testing.T) {
	r := Reactions{Likes: []string{"u1"}}
	// a stale double-add must not duplicate the id
	r.Likes = appendID(r.Likes, "u1")
	assert.Equal(t, []string{"u1"}, r.Likes)
}
