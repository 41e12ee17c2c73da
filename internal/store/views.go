package store

import (
	"strings"

	"ecofinds/internal/domain"
)

// Derived views are pure functions over a products/cart snapshot. They never
// mutate their inputs and never touch the backing store.

// suggestionLimit caps autocomplete results per keystroke.
const suggestionLimit = 5

// FilterProducts returns the products whose title contains query
// (case-insensitive) and whose category matches exactly. An empty category
// or "All" matches every category; an empty query matches every title.
func FilterProducts(products []domain.Product, category, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != domain.CategoryAll && string(p.Category) != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Suggest returns up to five products matching query by title substring.
// An empty query yields no suggestions.
func Suggest(products []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		out = append(out, p)
		if len(out) == suggestionLimit {
			break
		}
	}
	return out
}

// ListingsBySeller returns the products listed by the given seller.
func ListingsBySeller(products []domain.Product, sellerID string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// CartTotal sums price times quantity across the cart.
func CartTotal(cart []domain.CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
