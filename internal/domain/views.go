package domain

import "strings"

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// Visible filters the catalog by category and free-text query, preserving the
// input ordering. A product matches when the category filter is "All" or equal,
// and the query (case-insensitive) is empty or a substring of the name or
// description. Pure; recomputed in full on every call.
func Visible(all []Product, category string, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if category != CategoryAll && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SellerProducts returns the products attributed to the named seller,
// preserving catalog order. An empty name yields an empty list.
func SellerProducts(all []Product, seller string) []Product {
	if seller == "" {
		return nil
	}
	var out []Product
	for _, p := range all {
		if p.Seller == seller {
			out = append(out, p)
		}
	}
	return out
}

// ItemCount is the sum of quantities across all cart lines.
func ItemCount(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity across all cart lines,
// recomputed fresh each call.
func Subtotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
