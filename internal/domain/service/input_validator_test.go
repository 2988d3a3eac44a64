package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

func TestInputValidator_AcceptsRequestWithinBounds(t *testing.T) {
	v := service.NewInputValidator(testEngineConfig())

	got := v.Validate(service.LoanRequest{
		Amount:       4000,
		PeriodMonths: 24,
		Country:      valueobject.CountryEstonia,
	}, date(1990, time.January, 1), evaluationTime)

	assert.Nil(t, got)
}

func TestInputValidator_Boundaries(t *testing.T) {
	v := service.NewInputValidator(testEngineConfig())
	birth := date(1990, time.January, 1)

	tests := []struct {
		name   string
		amount int64
		period int
		reason valueobject.RejectionReason // zero value => accepted
	}{
		{"minimum amount", 2000, 24, valueobject.RejectionReason{}},
		{"maximum amount", 10000, 24, valueobject.RejectionReason{}},
		{"amount below minimum", 1999, 24, valueobject.RejectionInvalidLoanAmount},
		{"amount above maximum", 10001, 24, valueobject.RejectionInvalidLoanAmount},
		{"minimum period", 4000, 12, valueobject.RejectionReason{}},
		{"maximum period", 4000, 60, valueobject.RejectionReason{}},
		{"period below minimum", 4000, 11, valueobject.RejectionInvalidLoanPeriod},
		{"period above maximum", 4000, 61, valueobject.RejectionInvalidLoanPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(service.LoanRequest{
				Amount:       tt.amount,
				PeriodMonths: tt.period,
				Country:      valueobject.CountryEstonia,
			}, birth, evaluationTime)

			if tt.reason.IsZero() {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestInputValidator_AgeCheckedBeforeAmount(t *testing.T) {
	v := service.NewInputValidator(testEngineConfig())

	// Both the age rule and the amount bound are violated; age wins.
	got := v.Validate(service.LoanRequest{
		Amount:       1,
		PeriodMonths: 24,
		Country:      valueobject.CountryEstonia,
	}, date(2015, time.June, 1), evaluationTime)

	require.NotNil(t, got)
	assert.Equal(t, valueobject.RejectionAgeRestricted, got.Reason)
	assert.Equal(t, "loan cannot be issued due to age restrictions", got.Message)
}

func TestInputValidator_AmountCheckedBeforePeriod(t *testing.T) {
	v := service.NewInputValidator(testEngineConfig())

	got := v.Validate(service.LoanRequest{
		Amount:       100,
		PeriodMonths: 6,
		Country:      valueobject.CountryEstonia,
	}, date(1990, time.January, 1), evaluationTime)

	require.NotNil(t, got)
	assert.Equal(t, valueobject.RejectionInvalidLoanAmount, got.Reason)
}
