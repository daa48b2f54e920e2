package repos

import (
	"github.com/jmoiron/sqlx"

	"mzansimarket/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// All returns the full catalog, most-recent-first.
func (r *ProductRepo) All() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, description, image_url, seller, category
	  FROM products
	  ORDER BY position DESC
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, description, image_url, seller, category
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// Insert adds the product at the front of the catalog.
func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, price, description, image_url, seller, category, position)
	  VALUES(?,?,?,?,?,?,?, COALESCE((SELECT MAX(position) FROM products), 0) + 1)
	`, p.ID, p.Name, p.Price, p.Description, p.ImageURL, p.Seller, p.Category)
	return err
}
