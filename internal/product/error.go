package product

import "errors"

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidInput = errors.New("product name and a positive price are required")
)
