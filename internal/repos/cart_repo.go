package repos

import (
	"github.com/jmoiron/sqlx"

	"mzansimarket/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// Add puts one unit of the product into the session's cart: an existing
// line gains quantity, otherwise a new line starts at 1.
func (r *CartRepo) Add(sessionID, productID string, price float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(session_id, product_id, qty, price_at_add)
	  VALUES(?,?,1,?)
	  ON CONFLICT(session_id, product_id) DO UPDATE
	  SET qty = cart_items.qty + 1
	`, sessionID, productID, price)
	return err
}

// SetQuantity sets a line's quantity outright; anything non-positive deletes
// the line. Both statements are no-ops for an absent product id.
func (r *CartRepo) SetQuantity(sessionID, productID string, qty int) error {
	if qty <= 0 {
		_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id = ? AND product_id = ?`,
			sessionID, productID)
		return err
	}
	_, err := r.db.Exec(`UPDATE cart_items SET qty = ? WHERE session_id = ? AND product_id = ?`,
		qty, sessionID, productID)
	return err
}

// Items returns the session's cart lines in the order they were first added.
// Products never change after creation, so joining the catalog is equivalent
// to the snapshot taken at add time (price_at_add is kept for the line total).
func (r *CartRepo) Items(sessionID string) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	err := r.db.Select(&items, `
	  SELECT p.id, p.name, ci.price_at_add AS price, p.description,
	         p.image_url, p.seller, p.category, ci.qty
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.session_id = ?
	  ORDER BY ci.created_at, ci.rowid
	`, sessionID)
	return items, err
}
