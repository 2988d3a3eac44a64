package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// evaluationTime is the fixed "now" used across the engine tests.
var evaluationTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testEngineConfig() service.EngineConfig {
	return service.EngineConfig{
		MinLoanAmount:       2000,
		MaxLoanAmount:       10000,
		MinLoanPeriodMonths: 12,
		MaxLoanPeriodMonths: 60,
		AgeOfMajority:       18,
		LifeExpectancy: service.LifeExpectancy{
			Estonia:   decimal.RequireFromString("78.6"),
			Latvia:    decimal.RequireFromString("75.4"),
			Lithuania: decimal.RequireFromString("76.4"),
		},
		CreditModifiers:  service.CreditModifiers{Segment1: 100, Segment2: 300, Segment3: 1000},
		ValidateChecksum: true,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeBetween(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  service.CalendarAge
	}{
		{"exact birthday", date(1990, time.March, 15), date(2024, time.March, 15), service.CalendarAge{Years: 34}},
		{"day before birthday", date(1990, time.March, 16), date(2024, time.March, 15), service.CalendarAge{Years: 33, Months: 11, Days: 28}},
		{"mid-year", date(1990, time.January, 1), date(2024, time.March, 15), service.CalendarAge{Years: 34, Months: 2, Days: 14}},
		{"borrowed days from leap february", date(1990, time.January, 31), date(2024, time.March, 15), service.CalendarAge{Years: 34, Months: 1, Days: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.AgeBetween(tt.birth, tt.now))
		})
	}
}

func TestAgeEligibility_Underage(t *testing.T) {
	checker := service.NewAgeEligibilityChecker(testEngineConfig())

	got := checker.Assess(date(2015, time.June, 1), 12, valueobject.CountryEstonia, evaluationTime)

	assert.False(t, got.Eligible)
	assert.Equal(t, service.AgeRuleMinimum, got.FailedRule)
}

func TestAgeEligibility_ExactlyAgeOfMajority(t *testing.T) {
	checker := service.NewAgeEligibilityChecker(testEngineConfig())

	// 18th birthday falls on the evaluation day.
	got := checker.Assess(date(2006, time.March, 15), 12, valueobject.CountryEstonia, evaluationTime)

	assert.True(t, got.Eligible)
}

func TestAgeEligibility_OverLifeExpectancyAtMaturity(t *testing.T) {
	checker := service.NewAgeEligibilityChecker(testEngineConfig())

	// Born 1950-01-01: age 74y2m14d. A 60-month loan adds 5 whole years,
	// pushing past the Estonian constant of 78.6.
	got := checker.Assess(date(1950, time.January, 1), 60, valueobject.CountryEstonia, evaluationTime)

	assert.False(t, got.Eligible)
	assert.Equal(t, service.AgeRuleMaturity, got.FailedRule)
}

func TestAgeEligibility_ShorterPeriodStillEligible(t *testing.T) {
	checker := service.NewAgeEligibilityChecker(testEngineConfig())

	// Same applicant, 12-month loan: only one whole year is added.
	got := checker.Assess(date(1950, time.January, 1), 12, valueobject.CountryEstonia, evaluationTime)

	assert.True(t, got.Eligible)
}

func TestAgeEligibility_CountryConstantsDiffer(t *testing.T) {
	checker := service.NewAgeEligibilityChecker(testEngineConfig())
	birth := date(1952, time.January, 1) // age 72y2m14d; +5y => 77.2

	assert.True(t, checker.Assess(birth, 60, valueobject.CountryEstonia, evaluationTime).Eligible)
	assert.False(t, checker.Assess(birth, 60, valueobject.CountryLatvia, evaluationTime).Eligible)
	assert.False(t, checker.Assess(birth, 60, valueobject.CountryLithuania, evaluationTime).Eligible)
}

func TestLifeExpectancy_UnknownCountryFallsBackToEstonia(t *testing.T) {
	cfg := testEngineConfig()

	got := cfg.LifeExpectancy.ForCountry(valueobject.Country{})

	assert.True(t, got.Equal(cfg.LifeExpectancy.Estonia))
}
