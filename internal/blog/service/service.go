package service

import (
	"context"
	"errors"

	"github.com/blogstack/blog-service/internal/blog"
	"github.com/blogstack/blog-service/internal/blog/repository"
	"github.com/blogstack/blog-service/pkg/metrics"
)

var (
	ErrNotFound = errors.New("not found")
)

// Repository is the document store contract the service depends on. Both the
// in-memory and the MongoDB repositories satisfy it.
type Repository interface {
	Create(ctx context.Context, b *blog.Blog) (string, error)
	Get(ctx context.Context, id string) (*blog.Blog, error)
	List(ctx context.Context) ([]*blog.Blog, error)
	Update(ctx context.Context, id string, upd blog.Update) error
	Delete(ctx context.Context, id string) error
}

// Service defines the blog operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, b *blog.Blog) (string, error)
	Get(ctx context.Context, id string) (*blog.Blog, error)
	List(ctx context.Context) ([]*blog.Blog, error)
	Update(ctx context.Context, id string, upd blog.Update) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// New returns a Service backed by the given repository.
func New(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, b *blog.Blog) (string, error) {
	id, err := s.repo.Create(ctx, b)
	metrics.ObserveStoreOp("create", err)
	return id, err
}

func (s *service) Get(ctx context.Context, id string) (*blog.Blog, error) {
	b, err := s.repo.Get(ctx, id)
	metrics.ObserveStoreOp("get", err)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]*blog.Blog, error) {
	list, err := s.repo.List(ctx)
	metrics.ObserveStoreOp("list", err)
	return list, err
}

func (s *service) Update(ctx context.Context, id string, upd blog.Update) error {
	err := s.repo.Update(ctx, id, upd)
	metrics.ObserveStoreOp("update", err)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	metrics.ObserveStoreOp("delete", err)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
