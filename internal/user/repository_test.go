package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	name := "John Doe"
	email := "john@example.com"
	password := "hashed_password"
	role := "CUSTOMER"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(name, email, password, role\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id, name, email, password, role, created_at`).
			WithArgs(name, email, password, role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
				AddRow(1, name, email, password, role, time.Now()))

		u, err := repo.Create(ctx, name, email, password, role)
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, email, u.Email)
		assert.Equal(t, RoleCustomer, u.Role)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		u, err := repo.Create(ctx, name, email, password, role)
		assert.Error(t, err)
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	email := "john@example.com"

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at"}).
			AddRow(1, "John Doe", email, "hashed", "CUSTOMER", time.Now())

		mock.ExpectQuery(`SELECT id, name, email, password, role, created_at FROM users WHERE email=\$1`).
			WithArgs(email).
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, email)
		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.Equal(t, email, u.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WithArgs(email).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, email)
		assert.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
