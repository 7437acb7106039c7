package order

import (
	"context"
	"database/sql"
	"sort"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx turns a cart mapping into one order plus its items inside
	// a single transaction. Every referenced product must still exist at
	// commit time; a missing one aborts the whole checkout.
	CreateOrderTx(ctx context.Context, userID uint, items map[uint]int) (*Order, error)
	GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetAllOrders(ctx context.Context, limit int) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(ctx context.Context, userID uint, items map[uint]int) (*Order, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Deterministic line order
	productIDs := make([]uint, 0, len(items))
	for id := range items {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	// 1. Re-validate every line and price it at checkout time
	var total float64
	lines := make([]Item, 0, len(productIDs))
	for _, productID := range productIDs {
		var price float64
		err := tx.QueryRowContext(ctx,
			"SELECT price FROM products WHERE id = $1",
			productID,
		).Scan(&price)
		if err == sql.ErrNoRows {
			log.Warn("checkout aborted: product vanished", zap.Uint("product_id", productID))
			return nil, ErrProductNotFound
		}
		if err != nil {
			return nil, err
		}

		qty := items[productID]
		total += price * float64(qty)
		lines = append(lines, Item{ProductID: productID, Quantity: qty, Price: price})
	}

	// 2. Create the order
	o := &Order{UserID: userID, Total: total, Status: StatusPreparing}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total, status)
		VALUES ($1, $2, 'PREPARING')
		RETURNING id, created_at, updated_at
	`, userID, total).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// 3. Snapshot the line items
	for i := range lines {
		lines[i].OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, lines[i].ProductID, lines[i].Quantity, lines[i].Price).Scan(&lines[i].ID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	o.Items = lines
	return o, nil
}

func (r *repository) GetOrdersByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err := r.attachItems(ctx, o); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *repository) GetAllOrders(ctx context.Context, limit int) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, total, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) attachItems(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}

	return rows.Err()
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
