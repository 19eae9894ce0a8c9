package utils

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientIPFor(t *testing.T, headers map[string]string) string {
	t.Helper()
	app := fiber.New()
	app.Get("/ip", func(c *fiber.Ctx) error {
		return c.SendString(ClientIP(c))
	})
	req := httptest.NewRequest("GET", "/ip", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "unknown", clientIPFor(t, nil))
	assert.Equal(t, "9.9.9.9", clientIPFor(t, map[string]string{"CF-Connecting-IP": "9.9.9.9"}))
	assert.Equal(t, "1.2.3.4", clientIPFor(t, map[string]string{"X-Forwarded-For": " 1.2.3.4 , 5.6.7.8"}))
	// CF header wins over the forwarded chain.
	assert.Equal(t, "9.9.9.9", clientIPFor(t, map[string]string{
		"CF-Connecting-IP": "9.9.9.9",
		"X-Forwarded-For":  "1.2.3.4",
	}))
}
