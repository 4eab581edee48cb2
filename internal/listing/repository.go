package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Filter struct {
	Category string
	Query    string
}

type CreateProductParams struct {
	Title    string
	Price    float64
	Category string
	ImageURL string
	PostedBy string
}

type Repository interface {
	EnsureSchema(ctx context.Context) error
	List(ctx context.Context, filter Filter) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			price NUMERIC NOT NULL,
			category TEXT NOT NULL,
			image_url TEXT NOT NULL,
			posted_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Product, error) {
	query := `SELECT id, title, price, category, image_url, posted_by, created_at
		FROM products WHERE 1=1`
	var args []any

	if filter.Category != "" && filter.Category != "All" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Category,
			&p.ImageURL, &p.PostedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `SELECT id, title, price, category, image_url, posted_by, created_at
		FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Price, &p.Category, &p.ImageURL, &p.PostedBy, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	p := Product{
		Title:    params.Title,
		Price:    params.Price,
		Category: params.Category,
		ImageURL: params.ImageURL,
		PostedBy: params.PostedBy,
	}
	err := r.db.QueryRowContext(ctx, `INSERT INTO products (title, price, category, image_url, posted_by)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		params.Title, params.Price, params.Category, params.ImageURL, params.PostedBy).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
