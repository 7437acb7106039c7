package client

import (
	"context"
	"net/http"

	"threadline-be/internal/order"
)

// CheckoutResult mirrors the server's checkout response.
type CheckoutResult struct {
	OrderID uint         `json:"order_id"`
	Total   float64      `json:"total"`
	Status  order.Status `json:"status"`
}

// Checkout converts the session cart into an order. An empty cart returns a
// *RequestError with status 422.
func (c *Client) Checkout(ctx context.Context) (*CheckoutResult, error) {
	var res CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/checkout", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MyOrders returns the caller's order history, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]*order.Order, error) {
	var res struct {
		Orders []*order.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders/my", nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}
