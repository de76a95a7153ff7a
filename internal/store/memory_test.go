package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shortlyhq/shortly/internal/shortlink"
	"github.com/shortlyhq/shortly/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink(url, code string, createdAt time.Time) *shortlink.ShortLink {
	return &shortlink.ShortLink{
		OriginalURL: url,
		ShortCode:   code,
		CreatedAt:   createdAt,
	}
}

func TestMemoryStoreInsert(t *testing.T) {
	t.Run("assigns an id on insert", func(t *testing.T) {
		s := store.NewMemoryStore()
		link := newLink("https://example.com", "abc123", time.Now())

		err := s.Insert(context.Background(), link)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, link.ID)
	})

	t.Run("rejects a duplicate short code", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(context.Background(), newLink("https://example.com", "abc123", time.Now())))

		err := s.Insert(context.Background(), newLink("https://other.com", "abc123", time.Now()))

		assert.ErrorIs(t, err, shortlink.ErrCodeTaken)
	})
}

func TestMemoryStoreFindByURL(t *testing.T) {
	t.Run("returns the earliest match", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(context.Background(), newLink("https://example.com", "first1", time.Now())))
		require.NoError(t, s.Insert(context.Background(), newLink("https://example.com", "second", time.Now())))

		link, err := s.FindByURL(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "first1", link.ShortCode)
	})

	t.Run("matches by exact string equality", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(context.Background(), newLink("https://example.com/path", "abc123", time.Now())))

		_, err := s.FindByURL(context.Background(), "https://example.com/path/")

		assert.ErrorIs(t, err, shortlink.ErrNotFound)
	})

	t.Run("returns ErrNotFound when no mapping exists", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.FindByURL(context.Background(), "https://example.com")

		assert.ErrorIs(t, err, shortlink.ErrNotFound)
	})
}

func TestMemoryStoreFindByCode(t *testing.T) {
	t.Run("returns the matching link", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Insert(context.Background(), newLink("https://example.com", "abc123", time.Now())))

		link, err := s.FindByCode(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link.OriginalURL)
	})

	t.Run("returns ErrNotFound for an unknown code", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.FindByCode(context.Background(), "missing")

		assert.ErrorIs(t, err, shortlink.ErrNotFound)
	})
}

func TestMemoryStoreList(t *testing.T) {
	t.Run("returns links ordered by creation time descending", func(t *testing.T) {
		s := store.NewMemoryStore()
		base := time.Now()

		require.NoError(t, s.Insert(context.Background(), newLink("https://b.com", "bbb111", base.Add(time.Minute))))
		require.NoError(t, s.Insert(context.Background(), newLink("https://a.com", "aaa111", base)))
		require.NoError(t, s.Insert(context.Background(), newLink("https://c.com", "ccc111", base.Add(2*time.Minute))))

		links, err := s.List(context.Background())

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "ccc111", links[0].ShortCode)
		assert.Equal(t, "bbb111", links[1].ShortCode)
		assert.Equal(t, "aaa111", links[2].ShortCode)
	})

	t.Run("returns empty slice for empty store", func(t *testing.T) {
		s := store.NewMemoryStore()

		links, err := s.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Run("removes the link and frees its code", func(t *testing.T) {
		s := store.NewMemoryStore()
		link := newLink("https://example.com", "abc123", time.Now())
		require.NoError(t, s.Insert(context.Background(), link))

		err := s.Delete(context.Background(), link.ID)
		require.NoError(t, err)

		_, err = s.FindByCode(context.Background(), "abc123")
		assert.ErrorIs(t, err, shortlink.ErrNotFound)

		// The code is reusable after deletion.
		assert.NoError(t, s.Insert(context.Background(), newLink("https://other.com", "abc123", time.Now())))
	})

	t.Run("returns ErrNotFound for an unknown id", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, shortlink.ErrNotFound)
	})
}
