package book

import (
	"context"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all books in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns the book with the given ID, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Add appends a book to the catalog.
func (s *Service) Add(ctx context.Context, b Book) error {
	return s.repo.Add(ctx, b)
}

// Delete removes the book with the given ID if present.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
