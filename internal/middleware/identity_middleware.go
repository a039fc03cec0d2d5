package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/identity"
)

// Identity resolves who is signed in once per request. A broken session is
// treated as signed out rather than failing the page.
func Identity(sessions *identity.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := sessions.State(c)
		if err != nil {
			slog.Warn("resolve session", "path", c.Path(), "error", err)
			st = identity.Unauthenticated()
		}
		identity.WithState(c, st)
		return c.Next()
	}
}
