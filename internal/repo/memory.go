package repo

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pos/internal/catalog"
	"github.com/noah-isme/backend-pos/internal/checkout"
	"github.com/noah-isme/backend-pos/internal/discount"
	"github.com/noah-isme/backend-pos/internal/units"
)

// MemoryProducts is a product catalog held in memory.
type MemoryProducts struct {
	products []catalog.Product
}

// NewMemoryProducts constructs a catalog from the given products.
func NewMemoryProducts(products []catalog.Product) *MemoryProducts {
	return &MemoryProducts{products: products}
}

// SeedProducts returns the default demo catalog.
func SeedProducts() *MemoryProducts {
	return NewMemoryProducts([]catalog.Product{
		{SKU: 1, Name: "Bread", UnitPrice: decimal.RequireFromString("0.4"), Unit: units.Piece},
		{SKU: 2, Name: "Eggs", UnitPrice: decimal.NewFromInt(1), Unit: units.Piece},
		{SKU: 3, Name: "Apples", UnitPrice: decimal.RequireFromString("1.99"), Unit: units.Pound},
		{SKU: 4, Name: "Milk", UnitPrice: decimal.RequireFromString("1.25"), Unit: units.Litre},
		{SKU: 5, Name: "Bananas", UnitPrice: decimal.RequireFromString("3.8"), Unit: units.Pound},
	})
}

// GetProduct returns the product with the given SKU.
func (r *MemoryProducts) GetProduct(_ context.Context, sku int64) (catalog.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}

// ListProducts returns a copy of the catalog.
func (r *MemoryProducts) ListProducts(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// MemoryDiscounts is a discount rule catalog held in memory.
type MemoryDiscounts struct {
	rules []discount.Rule
}

// NewMemoryDiscounts constructs a rule catalog from the given rules.
func NewMemoryDiscounts(rules []discount.Rule) *MemoryDiscounts {
	return &MemoryDiscounts{rules: rules}
}

// SeedDiscounts returns the default rule catalog. Prices at rest are zero;
// the pricing engine derives them from each rule's formula at add time.
func SeedDiscounts() *MemoryDiscounts {
	return NewMemoryDiscounts([]discount.Rule{
		{ID: 1, Description: "Three for a dollar", Quantity: decimal.NewFromInt(3)},
		{ID: 2, Description: "Buy two, get one free", Quantity: decimal.NewFromInt(3)},
		{ID: 3, Description: "80% off", Quantity: decimal.NewFromInt(1)},
		{ID: 4, Description: "50% off", Quantity: decimal.NewFromInt(1)},
	})
}

// GetRule returns the rule with the given id.
func (r *MemoryDiscounts) GetRule(_ context.Context, id int64) (discount.Rule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return discount.Rule{}, discount.ErrRuleNotFound
}

// ListRules returns a copy of the rule catalog.
func (r *MemoryDiscounts) ListRules(_ context.Context) ([]discount.Rule, error) {
	out := make([]discount.Rule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}

// MemoryCheckout stores checkout items in memory. The mutex makes id
// assignment and append/remove safe for concurrent callers.
type MemoryCheckout struct {
	mu     sync.Mutex
	nextID int64
	items  []checkout.Item
}

// NewMemoryCheckout constructs an empty checkout store.
func NewMemoryCheckout() *MemoryCheckout {
	return &MemoryCheckout{}
}

// AddItem assigns the next id and appends the item.
func (r *MemoryCheckout) AddItem(_ context.Context, item checkout.Item) (checkout.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)
	return item, nil
}

// GetItem looks up an item by id.
func (r *MemoryCheckout) GetItem(_ context.Context, id int64) (checkout.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return checkout.Item{}, false, nil
}

// DeleteItem removes an item by id, reporting whether it existed.
func (r *MemoryCheckout) DeleteItem(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListItems returns the items in insertion order.
func (r *MemoryCheckout) ListItems(_ context.Context) ([]checkout.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]checkout.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
