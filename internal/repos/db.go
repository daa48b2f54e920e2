package repos

import (
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"mzansimarket/internal/domain"
)

// OpenDB opens the session database and installs schema plus the seed
// catalog. The storefront runs against ":memory:" so everything is gone
// when the process exits.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// Every pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedCatalog(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products. position orders the catalog: higher = closer to the front.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  description TEXT NOT NULL,
  image_url TEXT NOT NULL,
  seller TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('Food & Drink','Handcrafts','Apparel','Art')),
  position INTEGER NOT NULL UNIQUE
);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

-- Cart lines, one per (session, product).
CREATE TABLE IF NOT EXISTS cart_items(
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_cart_items_session ON cart_items(session_id);
`
	_, err := db.Exec(schema)
	return err
}

// SeedProducts is the fixed startup catalog, front of the catalog first.
var SeedProducts = []domain.Product{
	{
		ID:          "seed-zulu-necklace",
		Name:        "Handmade Beaded Zulu Necklace",
		Price:       450.00,
		Description: "Stunning, handcrafted Zulu beaded necklace. A vibrant expression of South African heritage and artistry, perfect for special occasions or adding a bold statement to your everyday look. Each piece is unique, reflecting the rich cultural traditions of the Zulu people.",
		ImageURL:    "https://picsum.photos/seed/zulu/400/300",
		Seller:      "Africa Crafts Co.",
		Category:    domain.CategoryHandcrafts,
	},
	{
		ID:          "seed-rooibos-tea",
		Name:        "Organic Rooibos Tea (200g)",
		Price:       85.50,
		Description: "Naturally caffeine-free and rich in antioxidants. Sourced from the pristine Cederberg mountains, this premium quality Rooibos offers a smooth, sweet, and earthy flavour. Enjoy it hot or as a refreshing iced tea.",
		ImageURL:    "https://picsum.photos/seed/tea/400/300",
		Seller:      "Cape Herbal",
		Category:    domain.CategoryFoodDrink,
	},
	{
		ID:          "seed-biltong",
		Name:        "Original Biltong Slices (150g)",
		Price:       120.00,
		Description: "Authentic, air-dried cured meat, seasoned with traditional spices like coriander and black pepper. The perfect high-protein snack for any time of day. Made from the finest cuts of South African beef.",
		ImageURL:    "https://picsum.photos/seed/biltong/400/300",
		Seller:      "Karoo Meats",
		Category:    domain.CategoryFoodDrink,
	},
	{
		ID:          "seed-shweshwe-cushion",
		Name:        "Shweshwe Fabric Cushion Cover",
		Price:       295.00,
		Description: "Brighten up your home with this durable and iconic cushion cover made from 100% cotton Three Cats Shweshwe fabric. Features a vibrant, traditional print that adds a touch of Mzansi charm to any living space.",
		ImageURL:    "https://picsum.photos/seed/fabric/400/300",
		Seller:      "Mzansi Decor",
		Category:    domain.CategoryHandcrafts,
	},
	{
		ID:          "seed-protea-print",
		Name:        "Protea Watercolour Print",
		Price:       750.00,
		Description: "A beautiful A3 giclée print of a King Protea, South Africa's national flower. Printed on archival quality paper, this stunning watercolour artwork adds a touch of natural elegance to any room.",
		ImageURL:    "https://picsum.photos/seed/protea/400/300",
		Seller:      "Fynbos Fine Art",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "seed-springbok-tshirt",
		Name:        "Springbok Supporter T-Shirt",
		Price:       350.00,
		Description: "Show your pride with this comfortable cotton t-shirt in the iconic green and gold. Features a high-quality print of the Springbok logo. Perfect for game day or any day. Bokke forever!",
		ImageURL:    "https://picsum.photos/seed/bokke/400/300",
		Seller:      "SA Sportswear",
		Category:    domain.CategoryApparel,
	},
}

func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting sample catalog")

	repo := NewProductRepo(db)
	// The slice reads front-of-catalog first; inserting back-to-front gives
	// the front entries the highest positions.
	for i := len(SeedProducts) - 1; i >= 0; i-- {
		if err := repo.Insert(SeedProducts[i]); err != nil {
			return err
		}
	}
	return nil
}
