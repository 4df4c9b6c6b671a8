package book

import (
	"context"
)

// Repository defines the contract for book storage.
//
// Get returns ErrNotFound for a missing ID; absence is a normal outcome, not
// a failure. Delete of a missing ID is a silent no-op.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int) (Book, error)
	Add(ctx context.Context, b Book) error
	Delete(ctx context.Context, id int) error
}
