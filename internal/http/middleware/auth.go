package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Tazrian08/Organizer/internal/auth"
	"github.com/Tazrian08/Organizer/internal/model"
)

// IdentityLocalKey is the key used to store the verified identity in Fiber's context locals.
const IdentityLocalKey = "identity"

// RequireAuth rejects requests without a valid Bearer token and stores the
// verified identity in context locals for downstream handlers.
//
// A missing or malformed token is an authentication failure (401), distinct
// from the authorization failures (403) decided later against a record.
func RequireAuth(issuer *auth.TokenIssuer) fiber.Handler {
	const prefix = "Bearer "

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, prefix) {
			return fiber.ErrUnauthorized
		}

		identity, err := issuer.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(IdentityLocalKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx extracts the identity stored by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (model.Identity, bool) {
	identity, ok := c.Locals(IdentityLocalKey).(model.Identity)
	return identity, ok
}
