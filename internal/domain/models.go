package domain

// Category is the closed set of product classifications.
type Category string

const (
	CategoryFoodDrink  Category = "Food & Drink"
	CategoryHandcrafts Category = "Handcrafts"
	CategoryApparel    Category = "Apparel"
	CategoryArt        Category = "Art"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryFoodDrink, CategoryHandcrafts, CategoryApparel, CategoryArt}

// categoryBadges maps each category to its badge style, defined once so the
// templates never carry their own copy of the enumeration.
var categoryBadges = map[Category]string{
	CategoryFoodDrink:  "badge-amber",
	CategoryHandcrafts: "badge-sky",
	CategoryApparel:    "badge-purple",
	CategoryArt:        "badge-rose",
}

// ParseCategory returns the matching category and whether the input is a
// member of the closed set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Badge returns the presentational badge class for the category.
func (c Category) Badge() string { return categoryBadges[c] }

// Product is immutable once created; the catalog is its sole owner.
type Product struct {
	ID          string   `db:"id"`
	Name        string   `db:"name"`
	Price       float64  `db:"price"`
	Description string   `db:"description"`
	ImageURL    string   `db:"image_url"`
	Seller      string   `db:"seller"`
	Category    Category `db:"category"`
}

// CartItem is a product snapshot plus a positive quantity. A cart holds at
// most one item per product id.
type CartItem struct {
	Product
	Quantity int `db:"qty"`
}

type User struct {
	Name string
}
