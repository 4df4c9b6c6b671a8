package book

import (
	"context"
	"sync"
)

// MemoryRepository keeps books in an ordered in-memory slice for the lifetime
// of the process. A single coarse mutex guards the slice; operations are not
// transactional across calls.
//
// Add appends unconditionally, so duplicate IDs are legal. Get and Delete
// resolve a duplicate ID to the first match in insertion order.
type MemoryRepository struct {
	mu    sync.Mutex
	books []Book
}

// NewMemoryRepository creates a repository pre-populated with seed books.
func NewMemoryRepository(seed ...Book) *MemoryRepository {
	return &MemoryRepository{books: append([]Book(nil), seed...)}
}

// SeedBooks returns the catalog's initial contents.
func SeedBooks() []Book {
	return []Book{
		{ID: 1, Title: "1984", Author: "George Orwell"},
		{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee"},
	}
}

// List returns all books in insertion order.
func (r *MemoryRepository) List(ctx context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

// Get returns the first book whose ID matches, or ErrNotFound.
func (r *MemoryRepository) Get(ctx context.Context, id int) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

// Add appends the book to the end of the catalog. No uniqueness check.
func (r *MemoryRepository) Add(ctx context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books = append(r.books, b)
	return nil
}

// Delete removes the first book whose ID matches. A missing ID is a no-op.
func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.books {
		if b.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return nil
}
