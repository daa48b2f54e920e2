package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mzansimarket/internal/log"
	"mzansimarket/internal/services"
	"mzansimarket/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Select turns the detail overlay on for the product, independent of the
// current view, and sends the browser back to the single renderer.
func (h *ProductHandler) Select(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	sess(c).SelectProduct(p)
	return c.Redirect("/")
}
