package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/service"
)

type AuthHandler struct {
	sessions *identity.Sessions
	provider service.IdentityServiceInterface
}

func NewAuthHandler(sessions *identity.Sessions, provider service.IdentityServiceInterface) *AuthHandler {
	return &AuthHandler{sessions: sessions, provider: provider}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Get("/login", h.Login)
	auth.Get("/callback", h.Callback)
	auth.Get("/logout", h.Logout)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state, err := h.sessions.BeginLogin(c, c.Query("next"))
	if err != nil {
		return err
	}
	return c.Redirect(h.provider.LoginURL(state))
}

func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	if reason := c.Query("error"); reason != "" {
		slog.Warn("identity provider refused login", "error", reason, "description", c.Query("error_description"))
		return fiber.NewError(fiber.StatusUnauthorized, "Sign in was cancelled")
	}
	code := c.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing authorization code")
	}

	member, err := h.provider.Exchange(c.UserContext(), code)
	if err != nil {
		slog.Error("exchange authorization code", "error", err)
		return fiber.NewError(fiber.StatusBadGateway, "Sign in failed, please try again")
	}

	next, err := h.sessions.CompleteLogin(c, c.Query("state"), *member)
	if errors.Is(err, identity.ErrStateMismatch) {
		return fiber.NewError(fiber.StatusBadRequest, "Sign in expired, please try again")
	}
	if err != nil {
		return err
	}
	slog.Info("member signed in", "member_id", member.ID)
	return c.Redirect(next)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return err
	}
	return c.Redirect("/")
}
