package domain

// CartItem is the persisted cart fragment for a single product.
// Qty is always at least 1 and never exceeds CountInStock.
type CartItem struct {
	Product      string  `json:"product"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Qty          int     `json:"qty"`
	CountInStock int     `json:"countInStock"`
}
