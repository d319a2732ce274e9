package discount

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Formula derives a rule's bundle price from the product's unit price.
type Formula func(unitPrice decimal.Decimal) decimal.Decimal

var (
	two  = decimal.NewFromInt(2)
	five = decimal.NewFromInt(5)

	mu       sync.RWMutex
	formulas = map[int64]Formula{
		// Three for a dollar: the bundle costs a flat 1.00.
		1: func(decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(1) },
		// Buy two get one free: three units for the price of two.
		2: func(p decimal.Decimal) decimal.Decimal { return p.Mul(two) },
		// 80% off the unit price.
		3: func(p decimal.Decimal) decimal.Decimal { return p.Div(five) },
		// 50% off the unit price.
		4: func(p decimal.Decimal) decimal.Decimal { return p.Div(two) },
	}
)

// Register installs or replaces the pricing formula for a rule id, letting the
// rule catalog grow without touching the total calculation.
func Register(id int64, f Formula) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		delete(formulas, id)
		return
	}
	formulas[id] = f
}

// Parametrize resolves the rule's price against the product it is being
// attached to. Rules without a registered formula keep their stored price.
func Parametrize(rule Rule, unitPrice decimal.Decimal) Rule {
	mu.RLock()
	f, ok := formulas[rule.ID]
	mu.RUnlock()
	if ok {
		rule.Price = f(unitPrice)
	}
	return rule
}
