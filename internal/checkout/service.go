package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/catalog"
	"github.com/noah-isme/backend-pos/internal/discount"
	"github.com/noah-isme/backend-pos/internal/units"
)

const (
	quantityScale = 3
	totalScale    = 2
)

var one = decimal.NewFromInt(1)

// Service encapsulates checkout domain operations over injected repositories.
// It holds no state of its own; every call works on data fetched at call time.
type Service struct {
	Products catalog.Repository
	Rules    discount.Repository
	Items    ItemRepository
}

// AddParams describes an add-to-checkout request. BuyUnit defaults to the
// product's sale unit when empty; RuleID optionally references a discount rule.
type AddParams struct {
	SKU      int64
	Quantity decimal.Decimal
	BuyUnit  units.Unit
	RuleID   *int64
}

// AddItem validates the request, normalises the quantity into the product's
// sale unit and persists a priced checkout line.
func (s *Service) AddItem(ctx context.Context, p AddParams) (Item, error) {
	if s == nil || s.Products == nil || s.Items == nil {
		return Item{}, errors.New("checkout service not configured")
	}
	product, err := s.Products.GetProduct(ctx, p.SKU)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Item{}, fmt.Errorf("sku %d: %w", p.SKU, ErrProductNotFound)
		}
		return Item{}, err
	}
	if product.UnitPrice.Sign() <= 0 {
		return Item{}, fmt.Errorf("sku %d: %w", p.SKU, ErrInvalidPrice)
	}
	if p.Quantity.Sign() <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	if product.Unit.Countable() && !p.Quantity.IsInteger() {
		return Item{}, ErrFractionalQuantity
	}

	buyUnit := p.BuyUnit
	if buyUnit == "" {
		buyUnit = product.Unit
	}
	qty := p.Quantity
	if buyUnit != product.Unit {
		converted, err := units.Convert(qty, buyUnit, product.Unit)
		if err != nil {
			return Item{}, err
		}
		qty = converted.Round(quantityScale)
	}

	var rule *discount.Rule
	if p.RuleID != nil {
		stored, err := s.Rules.GetRule(ctx, *p.RuleID)
		if err != nil {
			return Item{}, err
		}
		derived := discount.Parametrize(stored, product.UnitPrice)
		rule = &derived
	}

	item := Item{
		Product:   product,
		Quantity:  qty,
		BuyUnit:   buyUnit,
		Rule:      rule,
		LinePrice: product.UnitPrice.Mul(qty),
	}
	return s.Items.AddItem(ctx, item)
}

// DeleteItem removes a checkout line by id. A missing item is reported as
// false, not as an error.
func (s *Service) DeleteItem(ctx context.Context, id int64) (bool, error) {
	if s == nil || s.Items == nil {
		return false, errors.New("checkout service not configured")
	}
	item, ok, err := s.Items.GetItem(ctx, id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return s.Items.DeleteItem(ctx, item.ID)
}

// ListItems returns the current checkout lines in insertion order.
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	if s == nil || s.Items == nil {
		return nil, errors.New("checkout service not configured")
	}
	return s.Items.ListItems(ctx)
}

// Total recomputes the checkout's grand total from all live items, rounded
// to two decimals, half away from zero. Discount rules are validated here
// rather than at add time.
func (s *Service) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		line, err := lineTotal(item)
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %d: %w", item.ID, err)
		}
		total = total.Add(line)
	}
	return total.Round(totalScale), nil
}

// lineTotal prices a single checkout line. Without a rule the stored baseline
// applies. With a rule, a threshold of one replaces the unit price, otherwise
// full bundles are charged at the rule price and the remainder at unit price.
func lineTotal(item Item) (decimal.Decimal, error) {
	if item.Rule == nil {
		return item.LinePrice, nil
	}
	rule := *item.Rule
	if err := rule.Validate(); err != nil {
		return decimal.Zero, err
	}
	if rule.Quantity.Equal(one) {
		return item.Quantity.Mul(rule.Price), nil
	}
	bundles := item.Quantity.Div(rule.Quantity).Floor()
	remainder := item.Quantity.Sub(bundles.Mul(rule.Quantity))
	return bundles.Mul(rule.Price).Add(remainder.Mul(item.Product.UnitPrice)), nil
}
