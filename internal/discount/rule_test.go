package discount_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pos/internal/discount"
)

func TestValidate(t *testing.T) {
	valid := discount.Rule{ID: 1, Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(1)}
	require.NoError(t, valid.Validate())

	zeroQty := discount.Rule{ID: 1, Quantity: decimal.Zero, Price: decimal.NewFromInt(1)}
	require.ErrorIs(t, zeroQty.Validate(), discount.ErrRuleQuantity)

	negPrice := discount.Rule{ID: 1, Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(-1)}
	require.ErrorIs(t, negPrice.Validate(), discount.ErrRulePrice)

	freeBundle := discount.Rule{ID: 2, Quantity: decimal.NewFromInt(3), Price: decimal.Zero}
	require.NoError(t, freeBundle.Validate())
}

func TestParametrize(t *testing.T) {
	unitPrice := decimal.RequireFromString("0.4")

	cases := []struct {
		id   int64
		want string
	}{
		{1, "1"},    // flat bundle price
		{2, "0.8"},  // two for the price of three units
		{3, "0.08"}, // 80% off
		{4, "0.2"},  // 50% off
	}
	for _, tc := range cases {
		rule := discount.Parametrize(discount.Rule{ID: tc.id, Quantity: decimal.NewFromInt(3)}, unitPrice)
		require.True(t, rule.Price.Equal(decimal.RequireFromString(tc.want)),
			"rule %d: got price %s", tc.id, rule.Price)
	}
}

func TestParametrizeUnknownRuleKeepsStoredPrice(t *testing.T) {
	stored := decimal.RequireFromString("9.99")
	rule := discount.Parametrize(discount.Rule{ID: 999, Price: stored}, decimal.NewFromInt(5))
	require.True(t, rule.Price.Equal(stored))
}

func TestRegister(t *testing.T) {
	discount.Register(42, func(p decimal.Decimal) decimal.Decimal { return p.Mul(decimal.NewFromInt(10)) })
	defer discount.Register(42, nil)

	rule := discount.Parametrize(discount.Rule{ID: 42}, decimal.NewFromInt(3))
	require.True(t, rule.Price.Equal(decimal.NewFromInt(30)))
}
