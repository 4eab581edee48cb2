package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "title", "price", "category", "image_url", "posted_by", "created_at"}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("No filter", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow(1, "iPhone 13 Pro", 999.0, "Electronics", "/uploads/a.png", "@techguy", time.Now()).
			AddRow(2, "Nike Air Max", 150.0, "Fashion", "/uploads/b.png", "@fashionista", time.Now())

		mock.ExpectQuery("SELECT id, title, price, category, image_url, posted_by, created_at").
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), Filter{})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "iPhone 13 Pro", products[0].Title)
	})

	t.Run("Category and search filter", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow(1, "iPhone 13 Pro", 999.0, "Electronics", "/uploads/a.png", "@techguy", time.Now())

		mock.ExpectQuery("AND category = \\$1 AND title ILIKE \\$2").
			WithArgs("Electronics", "%iphone%").
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), Filter{Category: "Electronics", Query: "iphone"})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("All category means no restriction", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns)

		mock.ExpectQuery("FROM products WHERE 1=1 ORDER BY created_at DESC").
			WillReturnRows(rows)

		_, err := repo.List(context.Background(), Filter{Category: "All"})
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, title").WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background(), Filter{})
		assert.Error(t, err)
	})
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns).
			AddRow(7, "Vintage Guitar", 300.0, "Miscellaneous", "/uploads/g.png", "@musiclover", time.Now())

		mock.ExpectQuery("FROM products WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		p, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Vintage Guitar", p.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM products WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		_, err := repo.Get(context.Background(), 404)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	params := CreateProductParams{
		Title:    "Widget",
		Price:    9.99,
		Category: "Miscellaneous",
		ImageURL: "/uploads/w.png",
		PostedBy: "@seller",
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now())

		mock.ExpectQuery("INSERT INTO products").
			WithArgs(params.Title, params.Price, params.Category, params.ImageURL, params.PostedBy).
			WillReturnRows(rows)

		p, err := repo.Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(11), p.ID)
		assert.Equal(t, "Widget", p.Title)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), params)
		assert.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS products").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewRepository(db).EnsureSchema(context.Background()))
}
