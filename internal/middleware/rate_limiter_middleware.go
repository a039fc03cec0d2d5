package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/localwork/marketplace/internal/util"
	"github.com/localwork/marketplace/internal/web"
)

// RateLimiter limits each client to max requests per expiration window.
// Stylesheets are not counted.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
		LimitReached:      limitReached,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

func limitReached(c *fiber.Ctx) error {
	const message = "Too many requests, please slow down and try again in a minute."
	if strings.HasPrefix(c.Path(), "/api/") {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusTooManyRequests,
			Message: message,
		})
	}
	return web.Render(c, fiber.StatusTooManyRequests, "pages/error", fiber.Map{
		"Title":   "Slow down",
		"Code":    fiber.StatusTooManyRequests,
		"Message": message,
	})
}
