package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/webstore/catalog-api/pkg/dbx"
	"github.com/webstore/catalog-api/pkg/product"
)

// ProductRepository implements product.Repository backed by PostgreSQL.
type ProductRepository struct {
	db dbx.DBTX
}

func NewProductRepository(db dbx.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, product_name, description, quantity, price
		FROM products ORDER BY product_id
	`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	products := []product.Product{}
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (product.Product, error) {
	var p product.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, product_name, description, quantity, price
		FROM products WHERE product_id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p product.Product) (product.Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (product_name, description, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id
	`, p.Name, p.Description, p.Quantity, p.Price).Scan(&p.ID)
	if err != nil {
		return product.Product{}, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p product.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET product_name = $1, description = $2, quantity = $3, price = $4, updated_at = now()
		WHERE product_id = $5
	`, p.Name, p.Description, p.Quantity, p.Price, p.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return product.ErrNotFound
	}
	return nil
}
