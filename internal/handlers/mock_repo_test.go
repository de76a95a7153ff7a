package handlers_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shortlyhq/shortly/internal/shortlink"
)

var errMock = errors.New("mock error")

// failingRepo is a test double for shortlink.Repository whose every
// operation fails with the configured error.
type failingRepo struct {
	err error
}

func (f *failingRepo) Insert(_ context.Context, _ *shortlink.ShortLink) error {
	return f.err
}

func (f *failingRepo) FindByURL(_ context.Context, _ string) (*shortlink.ShortLink, error) {
	return nil, f.err
}

func (f *failingRepo) FindByCode(_ context.Context, _ string) (*shortlink.ShortLink, error) {
	return nil, f.err
}

func (f *failingRepo) List(_ context.Context) ([]*shortlink.ShortLink, error) {
	return nil, f.err
}

func (f *failingRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}
