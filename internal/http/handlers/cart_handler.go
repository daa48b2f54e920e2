package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mzansimarket/internal/log"
	"mzansimarket/internal/services"
	"mzansimarket/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add puts one unit in the cart and opens the cart panel — the panel opening
// is a deliberate observable effect of adding.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	s := sess(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Redirect("/")
	}
	if err := h.Cart.Add(s.ID(), id); err != nil {
		applog.Error(c, "cart.add.error", err, map[string]any{"product": id})
		return err
	}
	s.OpenCart()
	return c.Redirect("/")
}

// SetQuantity sets a line's quantity outright; zero or less removes it.
// Unknown ids and unparsable quantities are silent no-ops.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	s := sess(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Redirect("/")
	}
	qty, ok := validate.Qty(c.FormValue("qty"))
	if !ok {
		return c.Redirect("/")
	}
	if err := h.Cart.SetQuantity(s.ID(), id, qty); err != nil {
		applog.Error(c, "cart.set_quantity.error", err, map[string]any{"product": id, "qty": qty})
		return err
	}
	return c.Redirect("/")
}

func (h *CartHandler) Open(c *fiber.Ctx) error {
	sess(c).OpenCart()
	return c.Redirect("/")
}

func (h *CartHandler) Close(c *fiber.Ctx) error {
	sess(c).CloseCart()
	return c.Redirect("/")
}
