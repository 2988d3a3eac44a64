package service

import (
	"github.com/shopspring/decimal"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// LifeExpectancy holds the per-country life-expectancy constants, in years,
// used as the ceiling for age at loan maturity.
type LifeExpectancy struct {
	Estonia   decimal.Decimal
	Latvia    decimal.Decimal
	Lithuania decimal.Decimal
}

// ForCountry returns the constant for the given country. Unknown countries
// resolve to the Estonian constant; ParseCountry applies the same fallback,
// so the two policies agree.
func (l LifeExpectancy) ForCountry(c valueobject.Country) decimal.Decimal {
	switch {
	case c.Equal(valueobject.CountryLatvia):
		return l.Latvia
	case c.Equal(valueobject.CountryLithuania):
		return l.Lithuania
	default:
		return l.Estonia
	}
}

// EngineConfig carries every business constant the decision engine depends
// on. It is supplied once at startup and never mutated; the engine treats it
// as read-only for the process lifetime.
type EngineConfig struct {
	MinLoanAmount       int64
	MaxLoanAmount       int64
	MinLoanPeriodMonths int
	MaxLoanPeriodMonths int
	AgeOfMajority       int
	LifeExpectancy      LifeExpectancy
	CreditModifiers     CreditModifiers
	// ValidateChecksum controls whether codes failing the mod-11 checksum are
	// rejected before parsing.
	ValidateChecksum bool
}
