package domain

// CartItem is a product in a user's cart. The marketplace sells unique
// secondhand items, so Quantity is always 1 and re-adding a product that is
// already in the cart does not increment it.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
