package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/api"
	"lms/mockserver"
)

func startEchoServer(t *testing.T) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/api/echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"authorization": c.Get("Authorization")})
	})
	app.Get("/api/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).JSON(fiber.Map{
			"status":  false,
			"message": "nope",
			"data":    map[string]string{"field": "bad"},
		})
	})
	app.Get("/api/garbage", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).SendString("<html>not json</html>")
	})

	base, shutdown, err := mockserver.Start(app)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown() })
	return base
}

func TestClientAttachesBearerToken(t *testing.T) {
	base := startEchoServer(t)

	client := api.New(base, 5*time.Second)
	client.SetToken("tok-123")

	body, err := client.Get("/echo", true)
	require.NoError(t, err)

	var echoed struct {
		Authorization string `json:"authorization"`
	}
	require.NoError(t, json.Unmarshal(body, &echoed))
	assert.Equal(t, "Bearer tok-123", echoed.Authorization)
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	base := startEchoServer(t)

	client := api.New(base, 5*time.Second)

	body, err := client.Get("/echo", false)
	require.NoError(t, err)

	var echoed struct {
		Authorization string `json:"authorization"`
	}
	require.NoError(t, json.Unmarshal(body, &echoed))
	assert.Empty(t, echoed.Authorization)
}

func TestClientRequestErrorCarriesStatusAndBody(t *testing.T) {
	base := startEchoServer(t)

	client := api.New(base, 5*time.Second)
	_, err := client.Get("/fail", false)
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusTeapot, reqErr.StatusCode)
	assert.Equal(t, "nope", reqErr.Body.Message)
	assert.Equal(t, "bad", reqErr.Body.Errors["field"])
}

func TestClientRequestErrorToleratesUnparseableBody(t *testing.T) {
	base := startEchoServer(t)

	client := api.New(base, 5*time.Second)
	_, err := client.Get("/garbage", false)
	require.Error(t, err)

	reqErr, ok := api.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadGateway, reqErr.StatusCode)
	assert.Empty(t, reqErr.Body.Message)
}

func TestClientNetworkError(t *testing.T) {
	// Nothing listens here.
	client := api.New("http://127.0.0.1:9", 2*time.Second)

	_, err := client.Get("/echo", false)
	require.Error(t, err)

	var netErr *api.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestClientMissingTokenFailsLocally(t *testing.T) {
	// Auth-required calls with no token must not hit the network at all, so
	// a dead address still yields a 401, not a NetworkError.
	client := api.New("http://127.0.0.1:9", 2*time.Second)

	_, err := client.Get("/me", true)
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}
