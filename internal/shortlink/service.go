package shortlink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// generateAttempts bounds how often creation retries when a randomly
// generated code collides with an existing row.
const generateAttempts = 3

// Service encodes the business rules for creating, listing, resolving and
// deleting short links.
type Service struct {
	repo     Repository
	generate CodeGenerator
	baseURL  string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new link service.
func NewService(repo Repository, generate CodeGenerator, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		generate: generate,
		baseURL:  baseURL,
		logger:   logger,
		now:      time.Now,
	}
}

// Create shortens originalURL. Creation is idempotent on the original URL:
// when a short link for the exact same URL already exists it is returned
// as-is and no uniqueness checks run. A non-empty customCode is validated and
// must not be taken; otherwise a random code is generated.
func (s *Service) Create(ctx context.Context, originalURL, customCode string) (*View, error) {
	if err := ValidateOriginalURL(originalURL); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByURL(ctx, originalURL)
	if err == nil {
		return s.view(existing), nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if customCode != "" {
		return s.createWithCustomCode(ctx, originalURL, customCode)
	}

	return s.createWithGeneratedCode(ctx, originalURL)
}

func (s *Service) createWithCustomCode(ctx context.Context, originalURL, customCode string) (*View, error) {
	if err := ValidateCustomCode(customCode); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByCode(ctx, customCode)
	if err == nil {
		return nil, fmt.Errorf("%w: code %q is already in use", ErrCodeTaken, customCode)
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	link := &ShortLink{
		OriginalURL: originalURL,
		ShortCode:   customCode,
		CreatedAt:   s.now(),
	}

	// The unique index is the real guard; a concurrent claim of the same
	// code between the check above and this insert still surfaces here.
	if err := s.repo.Insert(ctx, link); err != nil {
		if errors.Is(err, ErrCodeTaken) {
			return nil, fmt.Errorf("%w: code %q is already in use", ErrCodeTaken, customCode)
		}

		return nil, err
	}

	return s.view(link), nil
}

func (s *Service) createWithGeneratedCode(ctx context.Context, originalURL string) (*View, error) {
	var err error

	for attempt := 1; attempt <= generateAttempts; attempt++ {
		link := &ShortLink{
			OriginalURL: originalURL,
			ShortCode:   s.generate(),
			CreatedAt:   s.now(),
		}

		err = s.repo.Insert(ctx, link)
		if err == nil {
			return s.view(link), nil
		}

		if !errors.Is(err, ErrCodeTaken) {
			return nil, err
		}

		s.logger.Warn("generated short code collided",
			zap.String("code", link.ShortCode),
			zap.Int("attempt", attempt),
		)
	}

	// Not ErrCodeTaken: exhausting the random space is a server-side
	// failure, not a conflict the caller can resolve.
	return nil, fmt.Errorf("could not allocate a unique short code after %d attempts", generateAttempts)
}

// ListAll returns every short link as a view, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*View, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*View, 0, len(links))
	for _, link := range links {
		views = append(views, s.view(link))
	}

	return views, nil
}

// FindByCode resolves a short code to its stored link.
// Returns ErrNotFound when the code is unknown.
func (s *Service) FindByCode(ctx context.Context, code string) (*ShortLink, error) {
	return s.repo.FindByCode(ctx, code)
}

// DeleteByID removes a short link permanently.
// Returns ErrNotFound when the id is unknown.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) view(link *ShortLink) *View {
	return &View{
		ID:          link.ID,
		OriginalURL: link.OriginalURL,
		ShortCode:   link.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", s.baseURL, link.ShortCode),
		CreatedAt:   link.CreatedAt,
	}
}
