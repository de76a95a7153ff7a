package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the short link API, the redirect route and the
// health endpoint.
func RegisterRoutes(api huma.API, urlHandler *URLHandler, healthHandler *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-short-link",
		Method:        http.MethodPost,
		Path:          "/api/urls",
		Summary:       "Create a short link",
		Description:   "Shortens a URL. Re-submitting an already shortened URL returns the existing short link.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
	}, urlHandler.CreateShortLink)

	huma.Register(api, huma.Operation{
		OperationID: "list-short-links",
		Method:      http.MethodGet,
		Path:        "/api/urls",
		Summary:     "List all short links",
		Description: "Returns every short link, most recently created first.",
		Tags:        []string{"URLs"},
	}, urlHandler.ListShortLinks)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-short-link",
		Method:        http.MethodDelete,
		Path:          "/api/urls/{id}",
		Summary:       "Delete a short link",
		Description:   "Removes a short link permanently. Its code stops resolving immediately.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusNoContent,
	}, urlHandler.DeleteShortLink)

	huma.Register(api, huma.Operation{
		OperationID: "redirect-short-link",
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to the original URL",
		Description: "Redirects to the original URL associated with the short code.",
		Tags:        []string{"URLs"},
	}, urlHandler.RedirectToURL)

	huma.Get(api, "/health", healthHandler.Check)
}
