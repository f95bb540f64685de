package middleware

import (
	"context"
	"strings"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	LocalsUserID   = "user_id"
	LocalsRole     = "role"
	LocalsJTI      = "jti"
	LocalsTokenExp = "token_exp"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	// TokenRevocations reports tokens that were logged out before expiry.
	TokenRevocations interface {
		IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	}

	middleware struct {
		revocations TokenRevocations
	}
)

func NewMiddleware(revocations TokenRevocations) Middleware {
	return &middleware{revocations: revocations}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// bearerToken accepts both "Token <jwt>" and "Bearer <jwt>".
func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}

func (m *middleware) authenticate(c *fiber.Ctx, jwtService jwt.JWTService, token string) error {
	claims, err := jwtService.GetClaims(token)
	if err != nil {
		return err
	}

	revoked, err := m.revocations.IsTokenRevoked(c.Context(), claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return domain.ErrTokenRevoked
	}

	c.Locals(LocalsUserID, claims.UserID)
	c.Locals(LocalsRole, claims.Role)
	c.Locals(LocalsJTI, claims.ID)
	if claims.ExpiresAt != nil {
		c.Locals(LocalsTokenExp, claims.ExpiresAt.Time)
	}
	return nil
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		if err := m.authenticate(c, jwtService, token); err != nil {
			return presenters.ServiceErrorResponse(c, domain.MessageFailedTokenInvalid, err)
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware identifies the caller when a token is sent. A bad
// token is still rejected rather than silently treated as anonymous.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}
		if err := m.authenticate(c, jwtService, token); err != nil {
			return presenters.ServiceErrorResponse(c, domain.MessageFailedTokenInvalid, err)
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsRole).(string)
	return role
}
