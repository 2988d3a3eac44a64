package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
)

func TestLoanOptimizer_GrowsPeriodUntilCapacityClears(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	// Modifier 100 at 12 months can carry only 1200; the first period whose
	// capacity reaches 2000 is 20 months.
	offer, ok := o.Optimize(100, 12)

	require.True(t, ok)
	assert.Equal(t, service.Offer{Amount: 2000, PeriodMonths: 20}, offer)
}

func TestLoanOptimizer_KeepsRequestedPeriodWhenPossible(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	offer, ok := o.Optimize(300, 12)

	require.True(t, ok)
	assert.Equal(t, service.Offer{Amount: 3600, PeriodMonths: 12}, offer)
}

func TestLoanOptimizer_CapsAtMaximumAmount(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	offer, ok := o.Optimize(1000, 12)

	require.True(t, ok)
	assert.Equal(t, service.Offer{Amount: 10000, PeriodMonths: 12}, offer)
}

func TestLoanOptimizer_NoPeriodWithinBoundSucceeds(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	// Modifier 10 maxes out at 600 even at 60 months.
	_, ok := o.Optimize(10, 12)

	assert.False(t, ok)
}

func TestLoanOptimizer_SearchStartsAtRequestedPeriod(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	// Capacity would clear at shorter periods too, but the requested period is
	// the floor of the search.
	offer, ok := o.Optimize(300, 40)

	require.True(t, ok)
	assert.Equal(t, 40, offer.PeriodMonths)
}

func TestLoanOptimizer_RequestAtMaximumPeriod(t *testing.T) {
	o := service.NewLoanOptimizer(testEngineConfig())

	offer, ok := o.Optimize(100, 60)
	require.True(t, ok)
	assert.Equal(t, service.Offer{Amount: 6000, PeriodMonths: 60}, offer)

	_, ok = o.Optimize(33, 60) // 1980 < 2000 at the last candidate
	assert.False(t, ok)
}
