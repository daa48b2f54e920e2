package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mzansimarket/internal/session"
)

// Sessions mints the sid cookie and attaches the browser's session to the
// request context.
func Sessions(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
		}
		c.Locals("sess", store.Get(sid))
		return c.Next()
	}
}

func sess(c *fiber.Ctx) *session.Session {
	return c.Locals("sess").(*session.Session)
}
