package dto

import "time"

// ---------------------------------------------------------------------------
// Request / response DTOs (transport-agnostic)
// ---------------------------------------------------------------------------

// EvaluateLoanRequest carries one loan evaluation request.
type EvaluateLoanRequest struct {
	PersonalCode     string `json:"personal_code"`
	LoanAmount       int64  `json:"loan_amount"`
	LoanPeriodMonths int    `json:"loan_period_months"`
	Country          string `json:"country"`
}

// DecisionResponse carries the outcome of an evaluation. Exactly one of the
// approved pair or the rejection fields is populated.
type DecisionResponse struct {
	DecisionID           string    `json:"decision_id"`
	Approved             bool      `json:"approved"`
	ApprovedAmount       int64     `json:"approved_amount,omitempty"`
	ApprovedPeriodMonths int       `json:"approved_period_months,omitempty"`
	Reason               string    `json:"reason,omitempty"`
	Message              string    `json:"message,omitempty"`
	Country              string    `json:"country"`
	EvaluatedAt          time.Time `json:"evaluated_at"`
}

// LoanLimitsResponse exposes the configured request bounds so clients can
// pre-validate input before submitting.
type LoanLimitsResponse struct {
	MinLoanAmount       int64 `json:"min_loan_amount"`
	MaxLoanAmount       int64 `json:"max_loan_amount"`
	MinLoanPeriodMonths int   `json:"min_loan_period_months"`
	MaxLoanPeriodMonths int   `json:"max_loan_period_months"`
}
