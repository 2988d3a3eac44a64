package service

import (
	"time"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// DecisionEngine – domain service orchestrating one loan evaluation
// ---------------------------------------------------------------------------

// Decision is the outcome of one evaluation: either an approved offer or a
// rejection, never both.
type Decision struct {
	Amount       int64
	PeriodMonths int
	Rejection    *Rejection // nil when approved
}

// Approved reports whether the decision carries an offer.
func (d Decision) Approved() bool { return d.Rejection == nil }

// DecisionEngine runs the full evaluation pipeline:
//
//	parse code -> validate inputs -> resolve modifier -> period search
//
// It holds only immutable configuration and is safe for concurrent use. The
// resolved credit modifier stays local to each call; it is never stored on
// the engine.
type DecisionEngine struct {
	cfg       EngineConfig
	validator *InputValidator
	optimizer *LoanOptimizer
}

// NewDecisionEngine creates an engine from the given configuration.
func NewDecisionEngine(cfg EngineConfig) *DecisionEngine {
	return &DecisionEngine{
		cfg:       cfg,
		validator: NewInputValidator(cfg),
		optimizer: NewLoanOptimizer(cfg),
	}
}

// Evaluate produces the decision for one loan request at the given evaluation
// time. Every failure kind comes back as data on the Decision; the engine
// never returns a Go error for a business outcome.
func (e *DecisionEngine) Evaluate(req LoanRequest, now time.Time) Decision {
	if e.cfg.ValidateChecksum {
		if err := ValidateChecksum(req.PersonalCode); err != nil {
			return reject(valueobject.RejectionInvalidPersonalCode, "invalid personal ID code")
		}
	}

	code, err := ParsePersonalCode(req.PersonalCode)
	if err != nil {
		return reject(valueobject.RejectionInvalidPersonalCode, "invalid personal ID code")
	}

	if r := e.validator.Validate(req, code.BirthDate, now); r != nil {
		return Decision{Rejection: r}
	}

	segment := SegmentForKey(code.SegmentKey)
	modifier := e.cfg.CreditModifiers.ModifierFor(segment)
	if modifier == 0 {
		return reject(valueobject.RejectionNoValidLoan, "no valid loan found")
	}

	offer, ok := e.optimizer.Optimize(modifier, req.PeriodMonths)
	if !ok {
		return reject(valueobject.RejectionNoValidLoan, "no valid loan found")
	}

	return Decision{Amount: offer.Amount, PeriodMonths: offer.PeriodMonths}
}

func reject(reason valueobject.RejectionReason, message string) Decision {
	return Decision{Rejection: &Rejection{Reason: reason, Message: message}}
}
