package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mzansimarket/internal/log"
	"mzansimarket/internal/session"
)

// SessionHandler owns the navigation and login-stub transitions. Login is a
// toggle with a placeholder identity; there are no credentials.
type SessionHandler struct{}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	sess(c).Login()
	applog.Audit(c, "session.login", nil)
	return c.Redirect("/")
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	sess(c).Logout()
	applog.Audit(c, "session.logout", nil)
	return c.Redirect("/")
}

func (h *SessionHandler) Market(c *fiber.Ctx) error {
	sess(c).NavigateTo(session.ViewMarket)
	return c.Redirect("/")
}

func (h *SessionHandler) Dashboard(c *fiber.Ctx) error {
	sess(c).NavigateTo(session.ViewDashboard)
	return c.Redirect("/")
}

// Back dismisses the product detail overlay and falls back to whichever
// top-level view was active.
func (h *SessionHandler) Back(c *fiber.Ctx) error {
	sess(c).Back()
	return c.Redirect("/")
}
