package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/view"
	"github.com/localwork/marketplace/internal/web"
)

// PageHandler serves the static marketing pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Home)
	app.Get("/how-it-works", h.HowItWorks)
	app.Get("/pricing", h.Pricing)
	app.Get("/safety", h.Safety)
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return web.Render(c, fiber.StatusOK, "pages/home", fiber.Map{
		"Features": view.HomeFeatures,
	})
}

func (h *PageHandler) HowItWorks(c *fiber.Ctx) error {
	return web.Render(c, fiber.StatusOK, "pages/how_it_works", fiber.Map{
		"Title":         "How It Works",
		"SeekerSteps":   view.JobSeekerSteps,
		"EmployerSteps": view.EmployerSteps,
		"Benefits":      view.PlatformBenefits,
	})
}

func (h *PageHandler) Pricing(c *fiber.Ctx) error {
	return web.Render(c, fiber.StatusOK, "pages/pricing", fiber.Map{
		"Title": "Pricing",
		"FAQ":   view.PricingFAQ,
	})
}

func (h *PageHandler) Safety(c *fiber.Ctx) error {
	return web.Render(c, fiber.StatusOK, "pages/safety", fiber.Map{
		"Title":    "Safety & Trust",
		"Features": view.SafetyFeatures,
	})
}
