package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/units"
)

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a sellable catalog entry. UnitPrice is denominated in the
// product's sale unit and is immutable for pricing purposes.
type Product struct {
	SKU       int64           `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      units.Unit      `json:"unit"`
}

// Repository provides read access to the product catalog.
type Repository interface {
	GetProduct(ctx context.Context, sku int64) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
