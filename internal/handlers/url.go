package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/shortlyhq/shortly/internal/shortlink"
	"go.uber.org/zap"
)

// URLHandler translates HTTP operations into link service calls and maps
// domain errors to status codes.
type URLHandler struct {
	service *shortlink.Service
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(service *shortlink.Service, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		logger:  logger,
	}
}

func (h *URLHandler) CreateShortLink(ctx context.Context, req *CreateShortLinkRequest) (*CreateShortLinkResponse, error) {
	view, err := h.service.Create(ctx, req.Body.OriginalURL, req.Body.CustomCode)
	if err != nil {
		switch {
		case errors.Is(err, shortlink.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, shortlink.ErrCodeTaken):
			return nil, huma.Error409Conflict(err.Error())
		default:
			h.logger.Error("failed to create short link", zap.Error(err))
			return nil, huma.Error500InternalServerError("failed to create short link")
		}
	}

	return &CreateShortLinkResponse{Body: viewToBody(view)}, nil
}

func (h *URLHandler) ListShortLinks(ctx context.Context, _ *struct{}) (*ListShortLinksResponse, error) {
	views, err := h.service.ListAll(ctx)
	if err != nil {
		h.logger.Error("failed to list short links", zap.Error(err))
		return nil, huma.Error500InternalServerError("failed to list short links")
	}

	bodies := make([]ShortLinkView, 0, len(views))
	for _, view := range views {
		bodies = append(bodies, viewToBody(view))
	}

	return &ListShortLinksResponse{Body: bodies}, nil
}

func (h *URLHandler) DeleteShortLink(ctx context.Context, req *DeleteShortLinkRequest) (*struct{}, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		// An id that cannot parse can never address a row.
		return nil, huma.Error404NotFound("short link not found")
	}

	if err := h.service.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, shortlink.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		h.logger.Error("failed to delete short link", zap.String("id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete short link")
	}

	return nil, nil
}

func (h *URLHandler) RedirectToURL(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.service.FindByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, shortlink.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		h.logger.Error("failed to resolve short code", zap.String("code", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve short code")
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = link.OriginalURL

	return resp, nil
}

func viewToBody(view *shortlink.View) ShortLinkView {
	return ShortLinkView{
		ID:          view.ID.String(),
		OriginalURL: view.OriginalURL,
		ShortCode:   view.ShortCode,
		ShortURL:    view.ShortURL,
		CreatedAt:   view.CreatedAt,
	}
}
