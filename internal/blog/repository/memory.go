package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/blogstack/blog-service/internal/blog"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("blog not found")
)

// MemoryRepo is a simple in-memory repository used for unit tests and as a
// fallback when no MongoDB is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*blog.Blog
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*blog.Blog)}
}

func (m *MemoryRepo) Create(ctx context.Context, b *blog.Blog) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	stored := *b
	m.store[b.ID] = &stored
	m.order = append(m.order, b.ID)
	return b.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*blog.Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.store[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*blog.Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*blog.Blog, 0, len(m.store))
	for _, id := range m.order {
		if b, ok := m.store[id]; ok {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, upd blog.Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Content != nil {
		b.Content = *upd.Content
	}
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
