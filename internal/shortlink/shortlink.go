package shortlink

import (
	"time"

	"github.com/google/uuid"
)

// ShortLink is the persisted record mapping a short code to an original URL.
// Records are immutable after creation: the lifecycle is create, read, delete.
type ShortLink struct {
	ID          uuid.UUID
	OriginalURL string
	ShortCode   string
	CreatedAt   time.Time
}

// View is the API-facing representation of a ShortLink, including the full
// short URL composed from the service's public base URL.
type View struct {
	ID          uuid.UUID
	OriginalURL string
	ShortCode   string
	ShortURL    string
	CreatedAt   time.Time
}
