package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mzansimarket/internal/domain"
	applog "mzansimarket/internal/log"
	"mzansimarket/internal/services"
	"mzansimarket/internal/session"
	"mzansimarket/internal/validate"
)

// HomeHandler renders the storefront from the session's current state: a
// product detail overlay when one is selected, otherwise the active
// top-level view.
type HomeHandler struct {
	Catalog *services.CatalogService
	Cart    *services.CartService
}

// pageData assembles the fields every page shares: identity, cart panel
// contents and the badge count.
func pageData(st session.State, cv services.CartView) fiber.Map {
	return fiber.Map{
		"LoggedIn":     st.LoggedIn,
		"User":         st.User,
		"CartOpen":     st.CartOpen,
		"CartItems":    cv.Items,
		"CartCount":    cv.Count,
		"CartSubtotal": cv.Subtotal,
	}
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	s := sess(c)
	st := s.Snapshot()

	cv, err := h.Cart.View(s.ID())
	if err != nil {
		return err
	}
	data := pageData(st, cv)

	// The detail overlay takes precedence over whichever view is active.
	if st.Selected != nil {
		data["P"] = *st.Selected
		return render(c, "product", data)
	}

	if st.View == session.ViewDashboard {
		return h.dashboard(c, s, data, st)
	}
	return h.market(c, data)
}

func (h *HomeHandler) market(c *fiber.Ctx, data fiber.Map) error {
	q := validate.Q(c.Query("q"))
	category := domain.CategoryAll
	if raw := c.Query("category"); raw != "" && raw != domain.CategoryAll {
		if cat, ok := domain.ParseCategory(raw); ok {
			category = string(cat)
		} else {
			applog.Security(c, "validation.fail", map[string]any{"field": "category", "value": raw})
		}
	}

	all, err := h.Catalog.All()
	if err != nil {
		return err
	}
	data["Q"] = q
	data["ActiveCategory"] = category
	data["Products"] = domain.Visible(all, category, q)
	return render(c, "market", data)
}

func (h *HomeHandler) dashboard(c *fiber.Ctx, s *session.Session, data fiber.Map, st session.State) error {
	all, err := h.Catalog.All()
	if err != nil {
		return err
	}
	data["MyProducts"] = domain.SellerProducts(all, s.UserName())
	data["Draft"] = st.Draft
	return render(c, "dashboard", data)
}
