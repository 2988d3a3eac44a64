package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Age eligibility
// ---------------------------------------------------------------------------

// AgeRule identifies which eligibility rule a request failed.
type AgeRule string

const (
	// AgeRuleMinimum fails when the applicant is below the age of majority.
	AgeRuleMinimum AgeRule = "MINIMUM_AGE"
	// AgeRuleMaturity fails when the applicant's age at loan maturity would
	// exceed the life expectancy for the request's country.
	AgeRuleMaturity AgeRule = "MAXIMUM_AGE_AT_MATURITY"
)

// AgeAssessment is the outcome of an eligibility check.
type AgeAssessment struct {
	Eligible   bool
	FailedRule AgeRule // empty when eligible
}

// CalendarAge is a civil-calendar difference between two dates.
type CalendarAge struct {
	Years  int
	Months int
	Days   int
}

// AgeBetween computes the calendar age from birth to now. Days are borrowed
// from the month preceding "now", months from the year, matching civil age
// reckoning.
func AgeBetween(birth, now time.Time) CalendarAge {
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	days := now.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysIn(now.Year(), now.Month()-1)
	}
	if months < 0 {
		years--
		months += 12
	}
	return CalendarAge{Years: years, Months: months, Days: days}
}

// daysIn returns the number of days in the given month; time.Date normalises
// month 0 into December of the previous year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// AgeEligibilityChecker applies the minimum-age and maximum-age-at-maturity
// rules. It holds only immutable configuration; the evaluation time is passed
// in explicitly so checks are deterministic under test.
type AgeEligibilityChecker struct {
	ageOfMajority  int
	lifeExpectancy LifeExpectancy
}

// NewAgeEligibilityChecker creates a checker from the engine configuration.
func NewAgeEligibilityChecker(cfg EngineConfig) *AgeEligibilityChecker {
	return &AgeEligibilityChecker{
		ageOfMajority:  cfg.AgeOfMajority,
		lifeExpectancy: cfg.LifeExpectancy,
	}
}

// Assess checks both age rules for a request. The rules are independent and
// both must pass:
//
//   - whole-years age must reach the age of majority;
//   - fractional age (years + months/12 + days/365) plus the loan period in
//     whole years must not exceed the country's life expectancy.
//
// Fractional arithmetic uses decimals, not binary floats, so boundary cases
// are exact.
func (c *AgeEligibilityChecker) Assess(birth time.Time, periodMonths int, country valueobject.Country, now time.Time) AgeAssessment {
	age := AgeBetween(birth, now)

	if age.Years < c.ageOfMajority {
		return AgeAssessment{FailedRule: AgeRuleMinimum}
	}

	fractionalAge := decimal.NewFromInt(int64(age.Years)).
		Add(decimal.NewFromInt(int64(age.Months)).Div(monthsPerYear)).
		Add(decimal.NewFromInt(int64(age.Days)).Div(daysPerYear))
	maturityYears := decimal.NewFromInt(int64(periodMonths / 12))

	if fractionalAge.Add(maturityYears).GreaterThan(c.lifeExpectancy.ForCountry(country)) {
		return AgeAssessment{FailedRule: AgeRuleMaturity}
	}

	return AgeAssessment{Eligible: true}
}
