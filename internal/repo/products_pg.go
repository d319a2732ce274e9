package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/catalog"
	"github.com/noah-isme/backend-pos/internal/units"
)

// PostgresProducts reads the product catalog from Postgres. Expected schema:
//
//	CREATE TABLE products (
//	    sku              BIGINT PRIMARY KEY,
//	    name             TEXT NOT NULL,
//	    unit_price       NUMERIC NOT NULL,
//	    measurement_unit TEXT NOT NULL
//	);
type PostgresProducts struct {
	Pool *pgxpool.Pool
}

// GetProduct returns the product with the given SKU.
func (r *PostgresProducts) GetProduct(ctx context.Context, sku int64) (catalog.Product, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT sku, name, unit_price::text, measurement_unit FROM products WHERE sku = $1`, sku)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, fmt.Errorf("get product %d: %w", sku, err)
	}
	return product, nil
}

// ListProducts returns the full catalog ordered by SKU.
func (r *PostgresProducts) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT sku, name, unit_price::text, measurement_unit FROM products ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var (
		product  catalog.Product
		priceRaw string
		unitRaw  string
	)
	if err := row.Scan(&product.SKU, &product.Name, &priceRaw, &unitRaw); err != nil {
		return catalog.Product{}, err
	}
	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("parse unit price %q: %w", priceRaw, err)
	}
	unit, err := units.Parse(unitRaw)
	if err != nil {
		return catalog.Product{}, err
	}
	product.UnitPrice = price
	product.Unit = unit
	return product, nil
}
