package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/dto"
	"github.com/localwork/marketplace/internal/middleware"
	"github.com/localwork/marketplace/internal/usecase"
	"github.com/localwork/marketplace/internal/util"
	"github.com/localwork/marketplace/internal/view"
	"github.com/localwork/marketplace/internal/web"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/contact", h.Form)
	app.Post("/contact", middleware.RateLimiter(5, 1*time.Minute), h.Submit)
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return renderContact(c, fiber.StatusOK, fiber.Map{
		"Form":   dto.ContactForm{},
		"Errors": map[string]string{},
	})
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var form dto.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sub, err := h.uc.Submit(c.UserContext(), form)
	var ferr *util.FormError
	if errors.As(err, &ferr) {
		return renderContact(c, fiber.StatusUnprocessableEntity, fiber.Map{
			"Form":   form,
			"Errors": ferr.Errors,
		})
	}
	if err != nil {
		return err
	}
	return renderContact(c, fiber.StatusOK, fiber.Map{"Sent": sub})
}

func renderContact(c *fiber.Ctx, status int, bind fiber.Map) error {
	bind["Title"] = "Contact"
	bind["Info"] = view.ContactInfo
	return web.Render(c, status, "pages/contact", bind)
}
