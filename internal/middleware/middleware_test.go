package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revokedSet map[string]bool

func (r revokedSet) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	return r[jti], nil
}

func newApp(t *testing.T, revoked revokedSet) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTServiceWithSecret("secret", time.Hour)
	m := NewMiddleware(revoked)

	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		return c.SendString(UserID(c) + "|" + Role(c))
	}
	app.Get("/private", m.AuthMiddleware(jwtService), whoami)
	app.Get("/public", m.OptionalAuthMiddleware(jwtService), whoami)
	return app, jwtService
}

func get(t *testing.T, app *fiber.App, path, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	buf := make([]byte, 256)
	n, _ := res.Body.Read(buf)
	return res.StatusCode, string(buf[:n])
}

func TestAuthMiddleware(t *testing.T) {
	revoked := revokedSet{}
	app, jwtService := newApp(t, revoked)

	token, err := jwtService.GenerateTokenUser("user-1", "admin")
	require.NoError(t, err)

	status, body := get(t, app, "/private", "Token "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1|admin", body)

	status, _ = get(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = get(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = get(t, app, "/private", "Token garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	claims, err := jwtService.GetClaims(token)
	require.NoError(t, err)
	revoked[claims.ID] = true
	status, _ = get(t, app, "/private", "Token "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app, jwtService := newApp(t, revokedSet{})

	status, body := get(t, app, "/public", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "|", body)

	token, err := jwtService.GenerateTokenUser("user-2", "user")
	require.NoError(t, err)
	status, body = get(t, app, "/public", "Token "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-2|user", body)

	status, _ = get(t, app, "/public", "Token garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
