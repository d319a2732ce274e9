package units

import (
	"fmt"
	"strings"
)

// Unit identifies a measurement unit a quantity can be expressed in.
type Unit string

const (
	Piece      Unit = "piece"
	Gram       Unit = "gram"
	Kilogram   Unit = "kilogram"
	Pound      Unit = "pound"
	Ounce      Unit = "ounce"
	Millilitre Unit = "millilitre"
	Litre      Unit = "litre"
	Gallon     Unit = "gallon"
	Metre      Unit = "metre"
)

// Family groups units that are mutually convertible.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyCount
	FamilyMass
	FamilyVolume
	FamilyLength
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case FamilyCount:
		return "count"
	case FamilyMass:
		return "mass"
	case FamilyVolume:
		return "volume"
	case FamilyLength:
		return "length"
	default:
		return "unknown"
	}
}

// Family reports which unit family the unit belongs to.
func (u Unit) Family() Family {
	switch u {
	case Piece:
		return FamilyCount
	case Gram, Kilogram, Pound, Ounce:
		return FamilyMass
	case Millilitre, Litre, Gallon:
		return FamilyVolume
	case Metre:
		return FamilyLength
	default:
		return FamilyUnknown
	}
}

// Countable reports whether quantities in this unit must be whole numbers.
func (u Unit) Countable() bool {
	return u.Family() == FamilyCount
}

// All lists every known unit.
func All() []Unit {
	return []Unit{Piece, Gram, Kilogram, Pound, Ounce, Millilitre, Litre, Gallon, Metre}
}

// Parse converts a payload string into a Unit.
func Parse(value string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(value)))
	if u.Family() == FamilyUnknown {
		return "", fmt.Errorf("parse unit %q: %w", value, ErrUnknownUnit)
	}
	return u, nil
}
