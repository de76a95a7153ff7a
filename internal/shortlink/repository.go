package shortlink

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for short link storage operations.
type Repository interface {
	// Insert persists a new short link, assigning its ID. Returns
	// ErrCodeTaken when the short code is already claimed by another row.
	Insert(ctx context.Context, link *ShortLink) error

	// FindByURL returns the earliest short link whose original URL matches
	// exactly. Returns ErrNotFound if no mapping exists.
	FindByURL(ctx context.Context, originalURL string) (*ShortLink, error)

	// FindByCode returns the short link with the given code.
	// Returns ErrNotFound if no mapping exists.
	FindByCode(ctx context.Context, code string) (*ShortLink, error)

	// List returns every short link ordered by creation time, newest first.
	List(ctx context.Context) ([]*ShortLink, error)

	// Delete removes the short link with the given id permanently.
	// Returns ErrNotFound if no row was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
