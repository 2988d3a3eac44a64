package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Country – immutable value object
// ---------------------------------------------------------------------------

// Country represents a market in which loans are offered.
type Country struct {
	value string
}

const (
	countryEstonia   = "ESTONIA"
	countryLatvia    = "LATVIA"
	countryLithuania = "LITHUANIA"
)

var (
	CountryEstonia   = Country{value: countryEstonia}
	CountryLatvia    = Country{value: countryLatvia}
	CountryLithuania = Country{value: countryLithuania}
)

var validCountries = map[string]Country{
	countryEstonia:   CountryEstonia,
	countryLatvia:    CountryLatvia,
	countryLithuania: CountryLithuania,
}

// NewCountry creates a Country from a raw string, rejecting unknown values.
func NewCountry(s string) (Country, error) {
	v, ok := validCountries[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return Country{}, fmt.Errorf("invalid country: %q", s)
	}
	return v, nil
}

// ParseCountry maps a raw string onto a Country. Unrecognized values resolve
// to Estonia: the Estonian life-expectancy constant is the documented default
// for any market the engine does not know about.
func ParseCountry(s string) Country {
	if v, ok := validCountries[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return v
	}
	return CountryEstonia
}

// String returns the string representation of the country.
func (c Country) String() string { return c.value }

// IsZero returns true if the country has not been initialised.
func (c Country) IsZero() bool { return c.value == "" }

// Equal returns true when both countries carry the same value.
func (c Country) Equal(other Country) bool { return c.value == other.value }
