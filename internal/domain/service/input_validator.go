package service

import (
	"time"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Input validation
// ---------------------------------------------------------------------------

// LoanRequest is the immutable input to a single evaluation.
type LoanRequest struct {
	PersonalCode string
	Amount       int64
	PeriodMonths int
	Country      valueobject.Country
}

// Rejection describes why no offer was made.
type Rejection struct {
	Reason  valueobject.RejectionReason
	Message string
}

// InputValidator enforces the pre-computation business rules. The checks run
// in a fixed order and the first violation wins: age eligibility, then the
// amount bounds, then the period bounds.
type InputValidator struct {
	minAmount int64
	maxAmount int64
	minPeriod int
	maxPeriod int
	age       *AgeEligibilityChecker
}

// NewInputValidator creates a validator from the engine configuration.
func NewInputValidator(cfg EngineConfig) *InputValidator {
	return &InputValidator{
		minAmount: cfg.MinLoanAmount,
		maxAmount: cfg.MaxLoanAmount,
		minPeriod: cfg.MinLoanPeriodMonths,
		maxPeriod: cfg.MaxLoanPeriodMonths,
		age:       NewAgeEligibilityChecker(cfg),
	}
}

// Validate returns nil when the request may proceed to the period search, or
// the rejection for the first violated rule.
func (v *InputValidator) Validate(req LoanRequest, birth time.Time, now time.Time) *Rejection {
	if a := v.age.Assess(birth, req.PeriodMonths, req.Country, now); !a.Eligible {
		return &Rejection{
			Reason:  valueobject.RejectionAgeRestricted,
			Message: "loan cannot be issued due to age restrictions",
		}
	}
	if req.Amount < v.minAmount || req.Amount > v.maxAmount {
		return &Rejection{
			Reason:  valueobject.RejectionInvalidLoanAmount,
			Message: "invalid loan amount",
		}
	}
	if req.PeriodMonths < v.minPeriod || req.PeriodMonths > v.maxPeriod {
		return &Rejection{
			Reason:  valueobject.RejectionInvalidLoanPeriod,
			Message: "invalid loan period",
		}
	}
	return nil
}
