package product

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	CreateBatch(ctx context.Context, batch []CreateProductParams) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, price, size, stock, image_url, created_at FROM products ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Size, &p.Stock, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, price, size, stock, image_url, created_at FROM products WHERE id=$1",
		id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Size, &p.Stock, &p.ImageURL, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO products (name, price, size, stock, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, price, size, stock, image_url, created_at",
		params.Name, params.Price, params.Size, params.Stock, params.ImageURL,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Size, &p.Stock, &p.ImageURL, &p.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &p, nil
}

// CreateBatch inserts all rows in one transaction; any failure rolls back the
// whole batch.
func (r *repository) CreateBatch(ctx context.Context, batch []CreateProductParams) ([]Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created := make([]Product, 0, len(batch))
	for _, params := range batch {
		var p Product
		err := tx.QueryRowContext(ctx,
			"INSERT INTO products (name, price, size, stock, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, price, size, stock, image_url, created_at",
			params.Name, params.Price, params.Size, params.Stock, params.ImageURL,
		).Scan(&p.ID, &p.Name, &p.Price, &p.Size, &p.Stock, &p.ImageURL, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		created = append(created, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}
