package application

import (
	"context"
	"strings"
	"sync"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository used by the service tests. The
// increment methods mirror the production semantics: bump and threshold check
// happen under one lock so counts are never lost.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) get(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.get(u.ID); err != nil {
		return err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.get(id); err != nil {
		return err
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

func (r *fakeUserRepo) SetProfilePhoto(_ context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.ProfilePicture = url
	return nil
}

func (r *fakeUserRepo) SetCoverPhoto(_ context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.CoverPhoto = url
	return nil
}

func (r *fakeUserRepo) SetVerified(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.IsAccountVerified = true
	return nil
}

func (r *fakeUserRepo) AddProfileViewer(_ context.Context, id, viewerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	for _, v := range u.ViewedBy {
		if v == viewerID {
			return nil
		}
	}
	u.ViewedBy = append(u.ViewedBy, viewerID)
	return nil
}

func (r *fakeUserRepo) Follow(_ context.Context, targetID, followerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, err := r.get(targetID)
	if err != nil {
		return err
	}
	follower, err := r.get(followerID)
	if err != nil {
		return err
	}
	target.Followers = appendUnique(target.Followers, followerID)
	follower.Following = appendUnique(follower.Following, targetID)
	return nil
}

func (r *fakeUserRepo) Unfollow(_ context.Context, targetID, followerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, err := r.get(targetID)
	if err != nil {
		return err
	}
	follower, err := r.get(followerID)
	if err != nil {
		return err
	}
	target.Followers = remove(target.Followers, followerID)
	follower.Following = remove(follower.Following, targetID)
	return nil
}

func (r *fakeUserRepo) IncrementWarnings(_ context.Context, id string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return 0, false, err
	}
	u.WarningsCount++
	if u.WarningsCount >= entity.WarningLimit {
		u.IsBlocked = true
	}
	return u.WarningsCount, u.IsBlocked, nil
}

func (r *fakeUserRepo) IncrementLoginWarnings(_ context.Context, id string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return 0, false, err
	}
	u.LoginWarningsCount++
	if u.LoginWarningsCount >= entity.LoginAttemptLimit {
		u.IsBlocked = true
	}
	return u.LoginWarningsCount, u.IsBlocked, nil
}

func (r *fakeUserRepo) ResetLoginWarnings(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.LoginWarningsCount = 0
	return nil
}

func (r *fakeUserRepo) Block(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.IsBlocked = true
	return nil
}

func (r *fakeUserRepo) Unblock(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.get(id)
	if err != nil {
		return err
	}
	u.IsBlocked = false
	u.WarningsCount = 0
	u.LoginWarningsCount = 0
	return nil
}

func appendUnique(ids []string, id string) []string {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// wordListClassifier flags text containing any of the configured words.
type wordListClassifier struct {
	words []string
}

func (c *wordListClassifier) IsProfane(text string) bool {
	for _, w := range c.words {
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}
