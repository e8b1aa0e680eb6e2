package application

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) List(_ context.Context) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.comments[c.ID] = c
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) UpdateReactions(_ context.Context, id string, reactions entity.Reactions) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Reactions = reactions
	return c, nil
}

func newCommentService(users *fakeUserRepo, posts *fakePostRepo, comments *fakeCommentRepo, words ...string) *CommentService {
	return NewCommentService(comments, posts, users, newGuard(users, words...), quietLogger())
}

func TestCommentCreate(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", IsAccountVerified: true})
	posts := newFakePostRepo(&entity.Post{ID: "p1", UserID: "owner"})
	comments := newFakeCommentRepo()
	svc := newCommentService(users, posts, comments)

	comment, err := svc.Create(context.Background(), "u1", CommentRequest{
		PostID:      "p1",
		Description: "Great route, the ferry crossing saved us an hour.",
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", comment.PostID)
	assert.Equal(t, "u1", comment.UserID)
}

func TestCommentCreateRequiresVerifiedAccount(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1"})
	posts := newFakePostRepo(&entity.Post{ID: "p1"})
	comments := newFakeCommentRepo()
	svc := newCommentService(users, posts, comments)

	_, err := svc.Create(context.Background(), "u1", CommentRequest{
		PostID:      "p1",
		Description: "Great route, the ferry crossing saved us an hour.",
	})

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "Your account is not verified! You cannot create comment.", policyErr.Message)
	assert.Empty(t, comments.comments)
}

func TestCommentUpdateRequiresVerifiedAccount(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "author"})
	comments := newFakeCommentRepo(&entity.Comment{ID: "c1", PostID: "p1", UserID: "author"})
	svc := newCommentService(users, newFakePostRepo(), comments)

	_, err := svc.Update(context.Background(), "c1", "author", "an edit from an unverified account")

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "Your account is not verified! You cannot update comment.", policyErr.Message)
}

func TestCommentLengthBounds(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", IsAccountVerified: true})
	posts := newFakePostRepo(&entity.Post{ID: "p1"})
	svc := newCommentService(users, posts, newFakeCommentRepo())
	ctx := context.Background()

	tests := []struct {
		name        string
		description string
		wantMsg     string
	}{
		{"too short", "short", "Comment must be at least 10 characters long"},
		{"too long", strings.Repeat("x", 301), "Comment must be at most 300 characters long"},
		{"empty", "", "Comment must be provided to post"},
		{"angle brackets", "this comment has a <script> tag", "Comment cannot contain characters < or >"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "u1", CommentRequest{PostID: "p1", Description: tt.description})
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Message)
		})
	}

	// boundary values pass
	_, err := svc.Create(ctx, "u1", CommentRequest{PostID: "p1", Description: strings.Repeat("x", 10)})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "u1", CommentRequest{PostID: "p1", Description: strings.Repeat("x", 300)})
	assert.NoError(t, err)
}

func TestCommentLengthCountsRunes(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", IsAccountVerified: true})
	posts := newFakePostRepo(&entity.Post{ID: "p1"})
	svc := newCommentService(users, posts, newFakeCommentRepo())
	ctx := context.Background()

	// five characters, ten bytes: still too short
	_, err := svc.Create(ctx, "u1", CommentRequest{PostID: "p1", Description: strings.Repeat("ø", 5)})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Comment must be at least 10 characters long", validationErr.Message)

	// 250 characters, 500 bytes: within the limit
	_, err = svc.Create(ctx, "u1", CommentRequest{PostID: "p1", Description: strings.Repeat("ø", 250)})
	assert.NoError(t, err)
}

func TestCommentProfanityStrike(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	users := newFakeUserRepo(author)
	posts := newFakePostRepo(&entity.Post{ID: "p1"})
	svc := newCommentService(users, posts, newFakeCommentRepo(), "crap")

	_, err := svc.Create(context.Background(), "u1", CommentRequest{
		PostID:      "p1",
		Description: "what a crap suggestion this was",
	})

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, 1, author.WarningsCount)
}

func TestCommentReactionToggle(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1"})
	comments := newFakeCommentRepo(&entity.Comment{ID: "c1", PostID: "p1", UserID: "author"})
	svc := newCommentService(users, newFakePostRepo(), comments)
	ctx := context.Background()

	updated, err := svc.Like(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionLiked, updated.Reactions.StateFor("u1"))

	updated, err = svc.Dislike(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionDisliked, updated.Reactions.StateFor("u1"))
	assert.Empty(t, updated.Reactions.Likes)

	updated, err = svc.Dislike(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionNeutral, updated.Reactions.StateFor("u1"))
}

func TestCommentUpdateOwnerOrAdmin(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{ID: "author", IsAccountVerified: true},
		&entity.User{ID: "other", IsAccountVerified: true},
		&entity.User{ID: "admin", IsAdmin: true, IsAccountVerified: true},
	)
	comments := newFakeCommentRepo(&entity.Comment{ID: "c1", PostID: "p1", UserID: "author"})
	svc := newCommentService(users, newFakePostRepo(), comments)
	ctx := context.Background()

	_, err := svc.Update(ctx, "c1", "other", "an edit by someone else entirely")
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	updated, err := svc.Update(ctx, "c1", "admin", "moderated by an administrator")
	require.NoError(t, err)
	assert.Equal(t, "moderated by an administrator", updated.Description)
}
