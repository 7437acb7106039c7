package order

import "errors"

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrProductNotFound = errors.New("product no longer exists")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
)
