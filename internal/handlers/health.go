package handlers

import "context"

// Pinger defines the interface for checking datastore connectivity.
// *pgxpool.Pool satisfies it directly.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check operations.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
}

// Check performs a health check of the application and its datastore.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"

	if err := h.db.Ping(ctx); err != nil {
		resp.Body.Database = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Database = "healthy"
	}

	return resp, nil
}
