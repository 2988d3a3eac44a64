package service

// ---------------------------------------------------------------------------
// Loan optimisation
// ---------------------------------------------------------------------------

// Offer is an approvable (amount, period) pair found by the optimizer.
type Offer struct {
	Amount       int64
	PeriodMonths int
}

// LoanOptimizer searches for the smallest period, at or above the requested
// one, whose capacity clears the minimum loan amount. The period is only ever
// increased relative to the request, never decreased.
type LoanOptimizer struct {
	minAmount int64
	maxAmount int64
	maxPeriod int
}

// NewLoanOptimizer creates an optimizer from the engine configuration.
func NewLoanOptimizer(cfg EngineConfig) *LoanOptimizer {
	return &LoanOptimizer{
		minAmount: cfg.MinLoanAmount,
		maxAmount: cfg.MaxLoanAmount,
		maxPeriod: cfg.MaxLoanPeriodMonths,
	}
}

// capacity is the largest amount the applicant's segment supports for a
// given period.
func (o *LoanOptimizer) capacity(modifier int64, periodMonths int) int64 {
	return modifier * int64(periodMonths)
}

// Optimize runs the period search for a validated request. The search is
// bounded at the maximum loan period: once the period would have to grow past
// it, the outcome is "no valid loan", not a longer loop. The modifier must be
// strictly positive; debt-segment requests are rejected before this point.
func (o *LoanOptimizer) Optimize(modifier int64, requestedPeriodMonths int) (Offer, bool) {
	for period := requestedPeriodMonths; period <= o.maxPeriod; period++ {
		c := o.capacity(modifier, period)
		if c < o.minAmount {
			continue
		}
		if c > o.maxAmount {
			c = o.maxAmount
		}
		return Offer{Amount: c, PeriodMonths: period}, true
	}
	return Offer{}, false
}
