package services

import (
	"database/sql"
	"errors"

	"mzansimarket/internal/domain"
	"mzansimarket/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add puts one unit of the product into the session's cart. An unknown
// product id is silently tolerated, like every other cart no-op.
func (s *CartService) Add(sessionID, productID string) error {
	p, err := s.Prods.Get(productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.Carts.Add(sessionID, p.ID, p.Price)
}

// SetQuantity sets a line's quantity outright; non-positive removes the line.
func (s *CartService) SetQuantity(sessionID, productID string, qty int) error {
	return s.Carts.SetQuantity(sessionID, productID, qty)
}

type CartView struct {
	Items    []domain.CartItem
	Count    int
	Subtotal float64
}

// View returns the cart lines with the derived badge count and subtotal,
// both recomputed fresh from the lines.
func (s *CartService) View(sessionID string) (CartView, error) {
	items, err := s.Carts.Items(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{
		Items:    items,
		Count:    domain.ItemCount(items),
		Subtotal: domain.Subtotal(items),
	}, nil
}
