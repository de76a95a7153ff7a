package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shortlyhq/shortly/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func TestHealthHandlerCheck(t *testing.T) {
	t.Run("returns ok when the database is reachable", func(t *testing.T) {
		handler := handlers.NewHealthHandler(&mockPinger{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Database)
	})

	t.Run("returns degraded when the database is unreachable", func(t *testing.T) {
		handler := handlers.NewHealthHandler(&mockPinger{err: errors.New("connection refused")})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Database)
	})
}
