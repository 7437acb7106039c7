package cart

import "threadline-be/internal/product"

// Line is one product entry in a session cart. Subtotal is computed against
// the live product price, never snapshotted.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

type Cart struct {
	Items []Line  `json:"items"`
	Total float64 `json:"total"`
}

type AddItemParams struct {
	UserID    uint
	ProductID uint
	Quantity  int
}
