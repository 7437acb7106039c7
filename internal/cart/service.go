package cart

import (
	"context"
	"errors"
	"sort"

	"threadline-be/internal/logger"
	"threadline-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for session carts.
type Service interface {
	AddItem(ctx context.Context, params AddItemParams) (*Line, error)
	RemoveItem(ctx context.Context, userID, productID uint) error
	ViewCart(ctx context.Context, userID uint) (*Cart, error)
	ClearCart(ctx context.Context, userID uint) error
}

type service struct {
	store       Store
	productRepo product.Repository
}

func NewService(store Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

// AddItem accumulates quantity for a product in the session cart; adding the
// same product twice sums the quantities.
func (s *service) AddItem(ctx context.Context, params AddItemParams) (*Line, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	newQty, err := s.store.IncrItem(ctx, params.UserID, params.ProductID, params.Quantity)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("cart item added",
		zap.Uint("user_id", params.UserID),
		zap.Uint("product_id", params.ProductID),
		zap.Int64("quantity", newQty),
	)

	return &Line{
		Product:  *p,
		Quantity: int(newQty),
		Subtotal: p.Price * float64(newQty),
	}, nil
}

// RemoveItem deletes the entry; removing an absent product is a no-op.
func (s *service) RemoveItem(ctx context.Context, userID, productID uint) error {
	return s.store.RemoveItem(ctx, userID, productID)
}

// ViewCart reads quantities against live product prices, so a price change
// before checkout is reflected. Lines whose product has vanished are dropped.
func (s *service) ViewCart(ctx context.Context, userID uint) (*Cart, error) {
	items, err := s.store.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := &Cart{Items: make([]Line, 0, len(items))}
	for productID, qty := range items {
		p, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := p.Price * float64(qty)
		c.Items = append(c.Items, Line{Product: *p, Quantity: qty, Subtotal: subtotal})
		c.Total += subtotal
	}

	sort.Slice(c.Items, func(i, j int) bool {
		return c.Items[i].Product.ID < c.Items[j].Product.ID
	})

	return c, nil
}

// ClearCart empties the session cart; clearing an empty cart is fine.
func (s *service) ClearCart(ctx context.Context, userID uint) error {
	return s.store.Clear(ctx, userID)
}
