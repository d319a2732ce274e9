package discount

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrRuleNotFound indicates the requested discount rule does not exist.
	ErrRuleNotFound = errors.New("discount rule not found")
	// ErrRuleQuantity is returned when a rule carries a non-positive quantity threshold.
	ErrRuleQuantity = errors.New("discount rule quantity must be positive")
	// ErrRulePrice is returned when a rule carries a negative bundle price.
	ErrRulePrice = errors.New("discount rule price must not be negative")
)

// Rule prices a bundle of products: every Quantity units of the product cost
// Price. A quantity of one means Price replaces the unit price outright.
type Rule struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Validate ensures the rule can take part in a total calculation. Rules are
// deliberately not validated when attached to an item; a broken rule only
// surfaces once a total is requested.
func (r Rule) Validate() error {
	if r.Quantity.Sign() <= 0 {
		return ErrRuleQuantity
	}
	if r.Price.Sign() < 0 {
		return ErrRulePrice
	}
	return nil
}

// Repository provides read access to the discount rule catalog.
type Repository interface {
	GetRule(ctx context.Context, id int64) (Rule, error)
	ListRules(ctx context.Context) ([]Rule, error)
}
