package units

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrIncompatibleUnits is returned when two units cannot be converted
	// into one another.
	ErrIncompatibleUnits = errors.New("incompatible measurement units")
	// ErrUnknownUnit is returned when a unit name is not recognised.
	ErrUnknownUnit = errors.New("unknown measurement unit")
)

type pair struct {
	from Unit
	to   Unit
}

// Factors are stored per ordered pair as literal constants rather than
// computed inverses so converted quantities round the same way the catalog
// prices were calibrated against.
var factors = map[pair]decimal.Decimal{
	{Gram, Kilogram}:     decimal.RequireFromString("0.001"),
	{Gram, Pound}:        decimal.RequireFromString("0.00220462"),
	{Gram, Ounce}:        decimal.RequireFromString("0.035274"),
	{Kilogram, Gram}:     decimal.RequireFromString("1000"),
	{Kilogram, Pound}:    decimal.RequireFromString("2.20462"),
	{Kilogram, Ounce}:    decimal.RequireFromString("35.274"),
	{Pound, Gram}:        decimal.RequireFromString("453.592"),
	{Pound, Kilogram}:    decimal.RequireFromString("0.453592"),
	{Pound, Ounce}:       decimal.RequireFromString("16"),
	{Ounce, Gram}:        decimal.RequireFromString("28.3495"),
	{Ounce, Kilogram}:    decimal.RequireFromString("0.0283495"),
	{Ounce, Pound}:       decimal.RequireFromString("0.0625"),
	{Litre, Millilitre}:  decimal.RequireFromString("1000"),
	{Litre, Gallon}:      decimal.RequireFromString("0.264172"),
	{Millilitre, Litre}:  decimal.RequireFromString("0.001"),
	{Millilitre, Gallon}: decimal.RequireFromString("0.000264172"),
	{Gallon, Litre}:      decimal.RequireFromString("3.78541"),
	{Gallon, Millilitre}: decimal.RequireFromString("3785.41"),
}

// Convert expresses quantity, given in from, as an equivalent quantity in to.
// Identity conversions need no factor. Count and length units have no
// conversions defined, so anything other than identity fails for them.
func Convert(quantity decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	if from == to {
		return quantity, nil
	}
	if from.Family() == FamilyUnknown || to.Family() == FamilyUnknown {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, ErrUnknownUnit)
	}
	factor, ok := factors[pair{from, to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("convert %s to %s: %w", from, to, ErrIncompatibleUnits)
	}
	return quantity.Mul(factor), nil
}
