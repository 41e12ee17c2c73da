package domain

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryHome        Category = "Home & Garden"
	CategoryBooks       Category = "Books"
	CategorySports      Category = "Sports & Outdoors"
	CategoryOther       Category = "Other"
)

// CategoryAll is the wildcard accepted by the filter views, not a real category.
const CategoryAll = "All"

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFashion,
		CategoryHome,
		CategoryBooks,
		CategorySports,
		CategoryOther,
	}
}

// ValidCategory reports whether c is a member of the closed enum.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryHome, CategoryBooks, CategorySports, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	SellerID    string   `json:"sellerId"`
}
