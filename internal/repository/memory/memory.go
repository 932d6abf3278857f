// Package memory keeps every record in process memory. It backs the test
// suite and STORE_DRIVER=memory for local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

func NewRepositories() repository.Repositories {
	return repository.Repositories{
		Users:       &usersRepo{byName: map[string]models.User{}},
		Blogs:       &blogsRepo{byID: map[string]models.Blog{}, order: map[string]int64{}},
		Subscribers: &subscribersRepo{byEmail: map[string]models.Subscriber{}},
	}
}

type usersRepo struct {
	mu     sync.Mutex
	byName map[string]models.User
}

func (r *usersRepo) Create(_ context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[u.Username]; ok {
		return repository.ErrDuplicate
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.byName[u.Username] = u
	return nil
}

func (r *usersRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[username]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

type blogsRepo struct {
	mu    sync.Mutex
	byID  map[string]models.Blog
	// insertion sequence per id; keeps List stable
	order map[string]int64
	seq   int64
}

func (r *blogsRepo) Create(_ context.Context, b models.Blog) (models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = uuid.NewString()
	b.Likes = 0
	b.CreatedAt = time.Now().UTC()
	r.seq++
	r.order[b.ID] = r.seq
	r.byID[b.ID] = b
	return b, nil
}

func (r *blogsRepo) List(_ context.Context) ([]models.Blog, error) {
	return r.filter(func(models.Blog) bool { return true }), nil
}

func (r *blogsRepo) ListByAuthor(_ context.Context, author string) ([]models.Blog, error) {
	return r.filter(func(b models.Blog) bool { return b.Author == author }), nil
}

func (r *blogsRepo) filter(keep func(models.Blog) bool) []models.Blog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Blog{}
	for _, b := range r.byID {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out
}

func (r *blogsRepo) UpdateContent(_ context.Context, id, content string) (models.Blog, error) {
	return r.mutate(id, func(b *models.Blog) { b.Content = content })
}

func (r *blogsRepo) Like(_ context.Context, id string) (models.Blog, error) {
	return r.mutate(id, func(b *models.Blog) { b.Likes++ })
}

func (r *blogsRepo) mutate(id string, fn func(*models.Blog)) (models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return models.Blog{}, repository.ErrNotFound
	}
	fn(&b)
	r.byID[id] = b
	return b, nil
}

func (r *blogsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.order, id)
	return nil
}

type subscribersRepo struct {
	mu      sync.Mutex
	byEmail map[string]models.Subscriber
	emails  []string
}

func (r *subscribersRepo) Create(_ context.Context, s models.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[s.Email]; ok {
		return repository.ErrDuplicate
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.byEmail[s.Email] = s
	r.emails = append(r.emails, s.Email)
	return nil
}

func (r *subscribersRepo) List(_ context.Context) ([]models.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Subscriber, 0, len(r.emails))
	for _, e := range r.emails {
		out = append(out, r.byEmail[e])
	}
	return out, nil
}
