package handlers

import "time"

// CreateShortLinkRequest is the request body for creating a short link.
type CreateShortLinkRequest struct {
	Body struct {
		OriginalURL string `doc:"The URL to shorten"                                             example:"https://example.com/some/very/long/path?with=query" json:"originalUrl"`
		CustomCode  string `doc:"Optional custom short code (3-20 letters, digits, - or _)"      example:"my-link"                                             json:"customCode,omitempty" required:"false"`
	}
}

// ShortLinkView is the API representation of a stored short link.
type ShortLinkView struct {
	ID          string    `doc:"Unique identifier"    example:"6f1c62ee-8a4b-4d52-9b6e-0f5a3c9d1e21"  json:"id"`
	OriginalURL string    `doc:"The original URL"     example:"https://example.com/some/very/long/path" json:"originalUrl"`
	ShortCode   string    `doc:"The short code"       example:"Xk7dQz"                                json:"shortCode"`
	ShortURL    string    `doc:"The full short URL"   example:"http://localhost:3001/Xk7dQz"          json:"shortUrl"`
	CreatedAt   time.Time `doc:"Creation timestamp"   example:"2024-06-01T12:00:00Z"                  json:"createdAt"`
}

// CreateShortLinkResponse is the response for a successfully created short link.
type CreateShortLinkResponse struct {
	Body ShortLinkView
}

// ListShortLinksResponse is the response listing every short link, newest first.
type ListShortLinksResponse struct {
	Body []ShortLinkView
}

// DeleteShortLinkRequest is the request for deleting a short link by id.
type DeleteShortLinkRequest struct {
	ID string `doc:"Id of the short link to delete" example:"6f1c62ee-8a4b-4d52-9b6e-0f5a3c9d1e21" path:"id"`
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"Xk7dQz" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
