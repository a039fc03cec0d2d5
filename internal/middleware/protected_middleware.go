package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/web"
)

// Protected only lets signed-in members through. Others get the loading
// placeholder or a sign-in prompt carrying message.
func Protected(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := identity.Decide(identity.FromCtx(c), message)
		switch d.Render {
		case identity.RenderLoading:
			return web.Render(c, fiber.StatusOK, "pages/loading", fiber.Map{"Title": "Loading", "Refresh": 2})
		case identity.RenderSignIn:
			return web.Render(c, fiber.StatusUnauthorized, "pages/sign_in", fiber.Map{
				"Title":   "Sign in",
				"Message": d.Message,
				"Return":  c.OriginalURL(),
			})
		default:
			return c.Next()
		}
	}
}
