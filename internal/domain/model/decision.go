package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/event"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanDecision – immutable record of a single evaluation
// ---------------------------------------------------------------------------

// LoanDecision records the outcome of one evaluation for event emission and
// response mapping. It lives for the duration of the request only; decisions
// are not persisted.
type LoanDecision struct {
	id                    string
	applicantHash         string
	country               valueobject.Country
	requestedAmount       int64
	requestedPeriodMonths int
	outcome               service.Decision
	evaluatedAt           time.Time
	domainEvents          []event.DomainEvent
}

// HashApplicant derives a pseudonymous applicant reference from the personal
// code. Only the hash appears in events and logs.
func HashApplicant(personalCode string) string {
	h := sha256.Sum256([]byte(personalCode))
	return hex.EncodeToString(h[:12])
}

// NewLoanDecision records an evaluation outcome and raises the matching
// domain event.
func NewLoanDecision(
	personalCode string,
	country valueobject.Country,
	requestedAmount int64,
	requestedPeriodMonths int,
	outcome service.Decision,
	now time.Time,
) LoanDecision {
	d := LoanDecision{
		id:                    uuid.New().String(),
		applicantHash:         HashApplicant(personalCode),
		country:               country,
		requestedAmount:       requestedAmount,
		requestedPeriodMonths: requestedPeriodMonths,
		outcome:               outcome,
		evaluatedAt:           now,
	}

	if outcome.Approved() {
		d.domainEvents = append(d.domainEvents, event.NewDecisionApproved(
			d.id, d.applicantHash, country.String(), outcome.Amount, outcome.PeriodMonths,
		))
	} else {
		d.domainEvents = append(d.domainEvents, event.NewDecisionRejected(
			d.id, d.applicantHash, country.String(), outcome.Rejection.Reason.String(),
		))
	}
	return d
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d LoanDecision) ID() string                     { return d.id }
func (d LoanDecision) ApplicantHash() string          { return d.applicantHash }
func (d LoanDecision) Country() valueobject.Country   { return d.country }
func (d LoanDecision) RequestedAmount() int64         { return d.requestedAmount }
func (d LoanDecision) RequestedPeriodMonths() int     { return d.requestedPeriodMonths }
func (d LoanDecision) Outcome() service.Decision      { return d.outcome }
func (d LoanDecision) EvaluatedAt() time.Time         { return d.evaluatedAt }
func (d LoanDecision) DomainEvents() []event.DomainEvent { return d.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (d LoanDecision) ClearEvents() LoanDecision {
	next := d
	next.domainEvents = nil
	return next
}
