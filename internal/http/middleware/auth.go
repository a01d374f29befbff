package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdfshare/internal/apperr"
)

const (
	// PrincipalLocalKey is the Fiber locals key holding the authenticated principal.
	PrincipalLocalKey = "principal"
	// LegacyTokenHeader carries a bare token for older clients.
	LegacyTokenHeader = "token"
)

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(token string) (string, error)
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return apperr.New(apperr.KindUnauthorized, "not authenticated")
		}
		principal, err := a.Authenticate(token)
		if err != nil {
			return err
		}
		c.Locals(PrincipalLocalKey, principal)
		return c.Next()
	}
}

// OptionalAuth resolves a token when one is presented and lets anonymous requests through.
// A presented but invalid token is still rejected.
func OptionalAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}
		principal, err := a.Authenticate(token)
		if err != nil {
			return err
		}
		c.Locals(PrincipalLocalKey, principal)
		return c.Next()
	}
}

// Principal returns the authenticated principal, or "" for anonymous requests.
func Principal(c *fiber.Ctx) string {
	p, _ := c.Locals(PrincipalLocalKey).(string)
	return p
}

func tokenFromRequest(c *fiber.Ctx) string {
	if h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(c.Get(LegacyTokenHeader))
}
