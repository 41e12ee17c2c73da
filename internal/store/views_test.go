package store

import (
	"fmt"
	"testing"

	"ecofinds/internal/domain"
)

func catalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Vintage Leather Jacket", Price: 75, Category: domain.CategoryFashion, SellerID: "2"},
		{ID: "2", Title: "Old Classic Novels Set", Price: 40, Category: domain.CategoryBooks, SellerID: "1"},
		{ID: "3", Title: "Retro Bluetooth Speaker", Price: 55, Category: domain.CategoryElectronics, SellerID: "2"},
		{ID: "4", Title: "Handmade Ceramic Pot", Price: 25, Category: domain.CategoryHome, SellerID: "1"},
	}
}

func TestFilterProductsKeywordIsCaseInsensitive(t *testing.T) {
	got := FilterProducts(catalog(), domain.CategoryAll, "RETRO")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("unexpected matches %+v", got)
	}
}

func TestFilterProductsConjunctiveWithCategory(t *testing.T) {
	// keyword matches product 3, but the category excludes it
	got := FilterProducts(catalog(), string(domain.CategoryBooks), "retro")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}

	got = FilterProducts(catalog(), string(domain.CategoryBooks), "")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected matches %+v", got)
	}
}

func TestFilterProductsWildcard(t *testing.T) {
	if got := FilterProducts(catalog(), "", ""); len(got) != 4 {
		t.Fatalf("empty category must match all, got %d", len(got))
	}
	if got := FilterProducts(catalog(), domain.CategoryAll, ""); len(got) != 4 {
		t.Fatalf("All must match every category, got %d", len(got))
	}
}

func TestSuggestCapsAtFive(t *testing.T) {
	var products []domain.Product
	for i := 0; i < 8; i++ {
		products = append(products, domain.Product{ID: fmt.Sprintf("p%d", i), Title: fmt.Sprintf("Lamp %d", i)})
	}
	got := Suggest(products, "lamp")
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	if got[0].ID != "p0" {
		t.Fatalf("suggestions must keep listing order, got %+v", got[0])
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	if got := Suggest(catalog(), "   "); got != nil {
		t.Fatalf("blank query must yield nothing, got %+v", got)
	}
}

func TestListingsBySeller(t *testing.T) {
	got := ListingsBySeller(catalog(), "1")
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "4" {
		t.Fatalf("unexpected listings %+v", got)
	}
}

func TestCartTotal(t *testing.T) {
	cart := []domain.CartItem{
		{Product: domain.Product{ID: "1", Price: 75}, Quantity: 1},
		{Product: domain.Product{ID: "3", Price: 55}, Quantity: 1},
	}
	if got := CartTotal(cart); got != 130 {
		t.Fatalf("expected 130, got %v", got)
	}
	if got := CartTotal(nil); got != 0 {
		t.Fatalf("empty cart must total 0, got %v", got)
	}
}
