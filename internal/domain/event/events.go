package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the decision service emits.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// BaseEvent provides the DomainEvent plumbing shared by all events.
type BaseEvent struct {
	id            string
	eventType     string
	aggregateID   string
	aggregateType string
	occurredAt    time.Time
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType, aggregateID, aggregateType string) BaseEvent {
	return BaseEvent{
		id:            uuid.NewString(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event.
func (e BaseEvent) EventID() string { return e.id }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.eventType }

// AggregateID returns the identifier of the aggregate that produced this event.
func (e BaseEvent) AggregateID() string { return e.aggregateID }

// AggregateType returns the type name of the producing aggregate.
func (e BaseEvent) AggregateType() string { return e.aggregateType }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// ---------------------------------------------------------------------------
// Decision events
// ---------------------------------------------------------------------------

// DecisionApproved is raised when an evaluation yields an offer. Events carry
// a pseudonymous applicant hash; the raw personal code never leaves the
// process.
type DecisionApproved struct {
	BaseEvent
	ApplicantHash        string `json:"applicant_hash"`
	Country              string `json:"country"`
	ApprovedAmount       int64  `json:"approved_amount"`
	ApprovedPeriodMonths int    `json:"approved_period_months"`
}

// NewDecisionApproved creates a decision.approved event.
func NewDecisionApproved(decisionID, applicantHash, country string, amount int64, periodMonths int) DecisionApproved {
	return DecisionApproved{
		BaseEvent:            NewBaseEvent("decision.approved", decisionID, "LoanDecision"),
		ApplicantHash:        applicantHash,
		Country:              country,
		ApprovedAmount:       amount,
		ApprovedPeriodMonths: periodMonths,
	}
}

// DecisionRejected is raised when an evaluation produces no offer.
type DecisionRejected struct {
	BaseEvent
	ApplicantHash string `json:"applicant_hash"`
	Country       string `json:"country"`
	Reason        string `json:"reason"`
}

// NewDecisionRejected creates a decision.rejected event.
func NewDecisionRejected(decisionID, applicantHash, country, reason string) DecisionRejected {
	return DecisionRejected{
		BaseEvent:     NewBaseEvent("decision.rejected", decisionID, "LoanDecision"),
		ApplicantHash: applicantHash,
		Country:       country,
		Reason:        reason,
	}
}
