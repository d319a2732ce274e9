package checkout

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/catalog"
	"github.com/noah-isme/backend-pos/internal/discount"
	"github.com/noah-isme/backend-pos/internal/units"
)

var (
	// ErrProductNotFound indicates the SKU does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidPrice is returned when the product carries a non-positive unit price.
	ErrInvalidPrice = errors.New("product unit price must be positive")
	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrFractionalQuantity is returned when a product sold by count is added
	// with a non-integral quantity.
	ErrFractionalQuantity = errors.New("products sold by count require a whole quantity")
)

// Item is one priced line of the checkout. Quantity is stored in the
// product's sale unit; LinePrice is the pre-discount baseline and is only
// used when no discount rule is attached at total-calculation time.
type Item struct {
	ID        int64           `json:"id"`
	Product   catalog.Product `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	BuyUnit   units.Unit      `json:"buyUnit"`
	Rule      *discount.Rule  `json:"discountRule,omitempty"`
	LinePrice decimal.Decimal `json:"linePrice"`
}

// ItemRepository stores checkout lines. Implementations assign ids on add
// and are responsible for their own synchronisation.
type ItemRepository interface {
	AddItem(ctx context.Context, item Item) (Item, error)
	GetItem(ctx context.Context, id int64) (Item, bool, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
	ListItems(ctx context.Context) ([]Item, error)
}
