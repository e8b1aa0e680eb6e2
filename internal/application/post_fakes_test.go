package application

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
)

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
}

func newFakePostRepo(posts ...*entity.Post) *fakePostRepo {
	r := &fakePostRepo{posts: make(map[string]*entity.Post)}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID] = p
	return nil
}

// clonePost detaches the stored entity the way a row scan does, so callers
// never hold a live pointer into the store.
func clonePost(p *entity.Post) *entity.Post {
	cp := *p
	cp.Reactions = entity.Reactions{
		Likes:    append([]string(nil), p.Reactions.Likes...),
		DisLikes: append([]string(nil), p.Reactions.DisLikes...),
	}
	return &cp
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *fakePostRepo) List(_ context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.NumViews++
	return nil
}

func (r *fakePostRepo) UpdateReactions(_ context.Context, id string, reactions entity.Reactions) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Reactions = reactions
	return clonePost(p), nil
}

type fakeChargerRepo struct {
	mu       sync.Mutex
	chargers map[string]*entity.EvCharger
}

func newFakeChargerRepo(chargers ...*entity.EvCharger) *fakeChargerRepo {
	r := &fakeChargerRepo{chargers: make(map[string]*entity.EvCharger)}
	for _, c := range chargers {
		r.chargers[c.ID] = c
	}
	return r
}

func (r *fakeChargerRepo) Create(_ context.Context, c *entity.EvCharger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chargers[c.ID] = c
	return nil
}

func (r *fakeChargerRepo) GetByID(_ context.Context, id string) (*entity.EvCharger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chargers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeChargerRepo) ListByPost(_ context.Context, postID string) ([]*entity.EvCharger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.EvCharger
	for _, c := range r.chargers {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChargerRepo) CountByPost(_ context.Context, postID string) (int, error) {
	list, _ := r.ListByPost(context.Background(), postID)
	return len(list), nil
}

func (r *fakeChargerRepo) Update(_ context.Context, c *entity.EvCharger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chargers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.chargers[c.ID] = c
	return nil
}

func (r *fakeChargerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chargers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.chargers, id)
	return nil
}

func (r *fakeChargerRepo) AssignToPost(_ context.Context, id, postID string, sequence int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.chargers[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.PostID = postID
	c.SequenceNumber = sequence
	c.IsAssigned = true
	return nil
}

func (r *fakeChargerRepo) DeleteUnassigned(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, c := range r.chargers {
		if !c.IsAssigned {
			delete(r.chargers, id)
			n++
		}
	}
	return n, nil
}

type fakeIndexer struct {
	mu      sync.Mutex
	indexed map[string]*entity.Post
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{indexed: make(map[string]*entity.Post)}
}

func (f *fakeIndexer) Index(_ context.Context, post *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed[post.ID] = post
	return nil
}

func (f *fakeIndexer) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.indexed, id)
	return nil
}

func (f *fakeIndexer) Search(_ context.Context, query string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, p := range f.indexed {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []any
}

func (q *fakeQueue) PublishJSON(_ context.Context, body any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, body)
	return nil
}

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return "https://storage.example.com/" + objectPath, nil
}
