package application

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func validPostRequest() PostRequest {
	return PostRequest{
		Title:               "Oslo to Trondheim",
		Description:         "Two days along the E6 with three charging stops.",
		MainCategory:        "Road trip",
		CarName:             "Kia EV6",
		UsableBatterySize:   74,
		Efficiency:          18.5,
		StartingLocation:    json.RawMessage(`{"lat":59.91,"lng":10.75}`),
		EndLocation:         json.RawMessage(`{"lat":63.43,"lng":10.39}`),
		RecommendedChargers: json.RawMessage(`{"stops":[]}`),
		Image:               "https://storage.example.com/posts/p.jpg",
		IsPublic:            true,
	}
}

func newPostService(users *fakeUserRepo, posts *fakePostRepo, chargers *fakeChargerRepo, words ...string) *PostService {
	guard := newGuard(users, words...)
	return NewPostService(posts, users, chargers, guard, newFakeIndexer(), fakeUploader{}, quietLogger())
}

func TestPostCreate(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	users := newFakeUserRepo(author)
	posts := newFakePostRepo()
	svc := newPostService(users, posts, newFakeChargerRepo())

	post, err := svc.Create(context.Background(), "u1", validPostRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "u1", post.UserID)
	stored, err := posts.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oslo to Trondheim", stored.Title)
}

func TestPostCreateRequiresVerifiedAccount(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: false}
	svc := newPostService(newFakeUserRepo(author), newFakePostRepo(), newFakeChargerRepo())

	_, err := svc.Create(context.Background(), "u1", validPostRequest())

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "Your account is not verified! You cannot create a post.", policyErr.Message)
}

func TestPostCreateRejectsInjection(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	svc := newPostService(newFakeUserRepo(author), newFakePostRepo(), newFakeChargerRepo())

	req := validPostRequest()
	req.Title = "<img src=x onerror=alert(1)>"
	_, err := svc.Create(context.Background(), "u1", req)

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, MsgCrossSiteScripting, policyErr.Message)
}

func TestPostCreateProfanityCountsStrike(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	users := newFakeUserRepo(author)
	svc := newPostService(users, newFakePostRepo(), newFakeChargerRepo(), "crap")

	req := validPostRequest()
	req.Description = "the crap charger at the halfway point never worked"
	_, err := svc.Create(context.Background(), "u1", req)

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, 1, author.WarningsCount)
}

func TestPostCreateChargerCap(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	svc := newPostService(newFakeUserRepo(author), newFakePostRepo(), newFakeChargerRepo())

	req := validPostRequest()
	for i := 0; i < entity.MaxChargersPerPost+1; i++ {
		req.Chargers = append(req.Chargers, fmt.Sprintf("charger-%d", i))
	}
	_, err := svc.Create(context.Background(), "u1", req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "You can only add up to 23 chargers!", validationErr.Message)
}

func TestPostCreateAssignsChargersInOrder(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	chargers := newFakeChargerRepo(
		&entity.EvCharger{ID: "c1", UserID: "u1"},
		&entity.EvCharger{ID: "c2", UserID: "u1"},
	)
	svc := newPostService(newFakeUserRepo(author), newFakePostRepo(), chargers)

	req := validPostRequest()
	req.Chargers = []string{"c2", "c1"}
	post, err := svc.Create(context.Background(), "u1", req)
	require.NoError(t, err)

	first, _ := chargers.GetByID(context.Background(), "c2")
	second, _ := chargers.GetByID(context.Background(), "c1")
	assert.Equal(t, post.ID, first.PostID)
	assert.Equal(t, 0, first.SequenceNumber)
	assert.Equal(t, 1, second.SequenceNumber)
	assert.True(t, first.IsAssigned)
}

func TestPostLikeToggle(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	post := &entity.Post{ID: "p1", UserID: "u1"}
	posts := newFakePostRepo(post)
	svc := newPostService(newFakeUserRepo(author), posts, newFakeChargerRepo())
	ctx := context.Background()

	updated, err := svc.Like(ctx, "p1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionLiked, updated.Reactions.StateFor("viewer"))

	// second like returns to neutral
	updated, err = svc.Like(ctx, "p1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionNeutral, updated.Reactions.StateFor("viewer"))
}

func TestPostDislikeReplacesLike(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	posts := newFakePostRepo(&entity.Post{ID: "p1", UserID: "u1"})
	svc := newPostService(newFakeUserRepo(author), posts, newFakeChargerRepo())
	ctx := context.Background()

	_, err := svc.Like(ctx, "p1", "viewer")
	require.NoError(t, err)
	updated, err := svc.Dislike(ctx, "p1", "viewer")
	require.NoError(t, err)

	assert.Equal(t, entity.ReactionDisliked, updated.Reactions.StateFor("viewer"))
	assert.NotContains(t, updated.Reactions.Likes, "viewer")
}

func TestPostGetCountsView(t *testing.T) {
	posts := newFakePostRepo(&entity.Post{ID: "p1", UserID: "u1", NumViews: 5})
	svc := newPostService(newFakeUserRepo(), posts, newFakeChargerRepo())

	post, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, post.NumViews)
}

func TestPostDeleteOwnerOnly(t *testing.T) {
	owner := &entity.User{ID: "u1"}
	other := &entity.User{ID: "u2"}
	admin := &entity.User{ID: "u3", IsAdmin: true}
	posts := newFakePostRepo(
		&entity.Post{ID: "p1", UserID: "u1"},
		&entity.Post{ID: "p2", UserID: "u1"},
	)
	svc := newPostService(newFakeUserRepo(owner, other, admin), posts, newFakeChargerRepo())
	ctx := context.Background()

	err := svc.Delete(ctx, "p1", "u2")
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	require.NoError(t, svc.Delete(ctx, "p1", "u1"))
	require.NoError(t, svc.Delete(ctx, "p2", "u3")) // admin override
}

func TestPostSearchDropsDeleted(t *testing.T) {
	author := &entity.User{ID: "u1", IsAccountVerified: true}
	users := newFakeUserRepo(author)
	posts := newFakePostRepo()
	guard := newGuard(users)
	index := newFakeIndexer()
	svc := NewPostService(posts, users, newFakeChargerRepo(), guard, index, fakeUploader{}, quietLogger())
	ctx := context.Background()

	kept, err := svc.Create(ctx, "u1", validPostRequest())
	require.NoError(t, err)
	req := validPostRequest()
	req.Title = "Oslo to Bergen"
	stale, err := svc.Create(ctx, "u1", req)
	require.NoError(t, err)

	// simulate the primary store losing the post while the index lags
	require.NoError(t, posts.Delete(ctx, stale.ID))

	results, err := svc.Search(ctx, "oslo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, kept.ID, results[0].ID)
}
