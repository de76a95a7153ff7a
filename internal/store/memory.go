package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shortlyhq/shortly/internal/shortlink"
)

// MemoryStore is an in-memory implementation of shortlink.Repository.
// It mirrors the Postgres store's contract, including the unique short code
// guarantee, and backs the unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	links  []*shortlink.ShortLink // insertion order
	byCode map[string]*shortlink.ShortLink
}

// NewMemoryStore creates a new in-memory short link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode: make(map[string]*shortlink.ShortLink),
	}
}

func (m *MemoryStore) Insert(_ context.Context, link *shortlink.ShortLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byCode[link.ShortCode]; taken {
		return shortlink.ErrCodeTaken
	}

	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	stored := *link
	m.links = append(m.links, &stored)
	m.byCode[stored.ShortCode] = &stored

	return nil
}

func (m *MemoryStore) FindByURL(_ context.Context, originalURL string) (*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, link := range m.links {
		if link.OriginalURL == originalURL {
			found := *link
			return &found, nil
		}
	}

	return nil, shortlink.ErrNotFound
}

func (m *MemoryStore) FindByCode(_ context.Context, code string) (*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.byCode[code]
	if !ok {
		return nil, shortlink.ErrNotFound
	}

	found := *link

	return &found, nil
}

func (m *MemoryStore) List(_ context.Context) ([]*shortlink.ShortLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*shortlink.ShortLink, 0, len(m.links))
	for i := len(m.links) - 1; i >= 0; i-- {
		link := *m.links[i]
		out = append(out, &link)
	}

	// Newest first; equal timestamps keep the later insert first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, link := range m.links {
		if link.ID == id {
			delete(m.byCode, link.ShortCode)
			m.links = append(m.links[:i], m.links[i+1:]...)

			return nil
		}
	}

	return shortlink.ErrNotFound
}
