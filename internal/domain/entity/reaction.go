package entity

// ReactionState describes one user's current reaction to a post or comment.
type ReactionState int

const (
	ReactionNeutral ReactionState = iota
	ReactionLiked
	ReactionDisliked
)

func (s ReactionState) String() string {
	switch s {
	case ReactionLiked:
		return "liked"
	case ReactionDisliked:
		return "disliked"
	default:
		return "neutral"
	}
}

// Reactions holds the like/dislike membership sets of a reactable entity.
// A user id appears in at most one of the two sets at any time; the per-user
// state is derived purely from membership, never from a shared flag.
type Reactions struct {
	Likes    []string
	DisLikes []string
}

// StateFor derives the reaction state of userID from set membership.
func (r *Reactions) StateFor(userID string) ReactionState {
	if containsID(r.Likes, userID) {
		return ReactionLiked
	}
	if containsID(r.DisLikes, userID) {
		return ReactionDisliked
	}
	return ReactionNeutral
}

// Like applies one like transition for userID and returns the resulting state:
// disliked -> liked, liked -> neutral, neutral -> liked.
func (r *Reactions) Like(userID string) ReactionState {
	switch r.StateFor(userID) {
	case ReactionDisliked:
		r.DisLikes = removeID(r.DisLikes, userID)
		r.Likes = appendID(r.Likes, userID)
		return ReactionLiked
	case ReactionLiked:
		r.Likes = removeID(r.Likes, userID)
		return ReactionNeutral
	default:
		r.Likes = appendID(r.Likes, userID)
		return ReactionLiked
	}
}

// Dislike applies one dislike transition for userID and returns the resulting
// state: liked -> disliked, disliked -> neutral, neutral -> disliked.
func (r *Reactions) Dislike(userID string) ReactionState {
	switch r.StateFor(userID) {
	case ReactionLiked:
		r.Likes = removeID(r.Likes, userID)
		r.DisLikes = appendID(r.DisLikes, userID)
		return ReactionDisliked
	case ReactionDisliked:
		r.DisLikes = removeID(r.DisLikes, userID)
		return ReactionNeutral
	default:
		r.DisLikes = appendID(r.DisLikes, userID)
		return ReactionDisliked
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func appendID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}
