package domain

// Order is an immutable record of a completed checkout. Items are snapshot
// copies of the purchased products, not live references.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []Product `json:"items"`
	OrderDate string    `json:"orderDate"`
	Total     float64   `json:"total"`
}
