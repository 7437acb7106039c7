package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrProductNotFound = errors.New("product not found")

	// -- Storage Failures --
	ErrFailedReadCart   = errors.New("failed to read cart")
	ErrFailedUpdateCart = errors.New("failed to update cart")
	ErrFailedClearCart  = errors.New("failed to clear cart")
)
