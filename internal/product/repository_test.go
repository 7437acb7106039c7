package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "name", "price", "size", "stock", "image_url", "created_at"}
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(1, "Linen Shirt", 39.90, "M", 10, nil, time.Now()).
			AddRow(2, "Denim Jacket", 89.00, "L", 5, "http://img/2.jpg", time.Now())

		mock.ExpectQuery(`SELECT id, name, price, size, stock, image_url, created_at FROM products ORDER BY id`).
			WillReturnRows(rows)

		products, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "Linen Shirt", products[0].Name)
		assert.Equal(t, 89.00, products[1].Price)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetAll(ctx)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(7, "Wool Coat", 120.00, "F", 3, nil, time.Now())

		mock.ExpectQuery(`SELECT id, name, price, size, stock, image_url, created_at FROM products WHERE id=\$1`).
			WithArgs(7).
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), p.ID)
		assert.Equal(t, "Wool Coat", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id=\$1`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		p, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, p)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	params := CreateProductParams{Name: "Linen Shirt", Price: 39.90, Size: "M", Stock: 10}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products \(name, price, size, stock, image_url\)`).
			WithArgs(params.Name, params.Price, params.Size, params.Stock, nil).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, params.Name, params.Price, params.Size, params.Stock, nil, time.Now()))

		p, err := repo.Create(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	batch := []CreateProductParams{
		{Name: "Linen Shirt", Price: 39.90, Size: "M", Stock: 10},
		{Name: "Denim Jacket", Price: 89.00, Size: "L", Stock: 5},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs(batch[0].Name, batch[0].Price, batch[0].Size, batch[0].Stock, nil).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, batch[0].Name, batch[0].Price, batch[0].Size, batch[0].Stock, nil, time.Now()))
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs(batch[1].Name, batch[1].Price, batch[1].Size, batch[1].Stock, nil).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(2, batch[1].Name, batch[1].Price, batch[1].Size, batch[1].Stock, nil, time.Now()))
		mock.ExpectCommit()

		created, err := repo.CreateBatch(ctx, batch)
		assert.NoError(t, err)
		assert.Len(t, created, 2)
	})

	t.Run("RollbackOnFailure", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs(batch[0].Name, batch[0].Price, batch[0].Size, batch[0].Stock, nil).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, batch[0].Name, batch[0].Price, batch[0].Size, batch[0].Stock, nil, time.Now()))
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		created, err := repo.CreateBatch(ctx, batch)
		assert.Error(t, err)
		assert.Nil(t, created)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
