package apiv1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHealthApi(t *testing.T) {
	var pingErr error
	app := testApp(t, func(app fiber.Router) {
		initHealthRouters(app, func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			return pingErr
		})
	})

	t.Run(`database up`, func(t *testing.T) {
		status, resp := doRequest(t, app, http.MethodGet, "/api/health", "", "")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, map[string]interface{}{"database": "up"}, resp.Data)
	})

	t.Run(`database down`, func(t *testing.T) {
		pingErr = errors.New("connection refused")
		status, resp := doRequest(t, app, http.MethodGet, "/api/health", "", "")
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, "Database unavailable", resp.Message)
		require.Equal(t, map[string]interface{}{"database": "down"}, resp.Data)
	})
}
