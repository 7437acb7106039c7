package client

import (
	"context"
	"fmt"
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/product"
)

// Products lists the catalog.
func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	var res struct {
		Products []product.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

// AddItem adds quantity units of a product to the session cart and returns
// the resulting line with the accumulated quantity.
func (c *Client) AddItem(ctx context.Context, productID uint, quantity int) (*cart.Line, error) {
	body := map[string]interface{}{"product_id": productID, "quantity": quantity}

	var line cart.Line
	if err := c.do(ctx, http.MethodPost, "/cart/items", body, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

// RemoveItem drops a product from the cart. Removing an absent product
// succeeds.
func (c *Client) RemoveItem(ctx context.Context, productID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil, nil)
}

// ViewCart returns the cart priced at current catalog prices.
func (c *Client) ViewCart(ctx context.Context) (*cart.Cart, error) {
	var res cart.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
