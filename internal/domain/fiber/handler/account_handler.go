package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/middleware"
	"github.com/localwork/marketplace/internal/usecase"
	"github.com/localwork/marketplace/internal/web"
)

const AdminSignInMessage = "Sign in to access the admin dashboard"

// AccountHandler serves the signed-in dashboards.
type AccountHandler struct {
	uc *usecase.DashboardUsecase
}

func NewAccountHandler(uc *usecase.DashboardUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

func (h *AccountHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/profile", middleware.Protected(identity.DefaultSignInMessage), h.Profile)
	app.Get("/admin", middleware.Protected(AdminSignInMessage), h.Admin)
}

func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	member := identity.FromCtx(c).Member()
	if member == nil {
		return fiber.ErrUnauthorized
	}
	profile, err := h.uc.Profile(c.UserContext(), *member)
	if err != nil {
		return err
	}
	return web.Render(c, fiber.StatusOK, "pages/profile", fiber.Map{
		"Title":   "My Profile",
		"Profile": profile,
	})
}

func (h *AccountHandler) Admin(c *fiber.Ctx) error {
	dashboard, err := h.uc.Admin(c.UserContext())
	if err != nil {
		return err
	}
	return web.Render(c, fiber.StatusOK, "pages/admin", fiber.Map{
		"Title":     "Admin Dashboard",
		"Dashboard": dashboard,
	})
}
