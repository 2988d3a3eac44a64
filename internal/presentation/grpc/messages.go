package grpc

// messages.go defines the DecisionService request/response payloads carried
// by the JSON codec. They mirror the messages in
// decisionengine/v1/decision.proto.

// EvaluateLoanRequest asks for a decision on one loan application.
type EvaluateLoanRequest struct {
	PersonalCode     string `json:"personal_code"`
	LoanAmount       int64  `json:"loan_amount"`
	LoanPeriodMonths int    `json:"loan_period_months"`
	Country          string `json:"country"`
}

// EvaluateLoanResponse carries the decision. Business rejections are data on
// the response, never gRPC errors.
type EvaluateLoanResponse struct {
	DecisionID           string `json:"decision_id"`
	Approved             bool   `json:"approved"`
	ApprovedAmount       int64  `json:"approved_amount,omitempty"`
	ApprovedPeriodMonths int    `json:"approved_period_months,omitempty"`
	Reason               string `json:"reason,omitempty"`
	Message              string `json:"message,omitempty"`
	Country              string `json:"country"`
	EvaluatedAt          string `json:"evaluated_at"`
}

// GetLimitsRequest asks for the configured request bounds.
type GetLimitsRequest struct{}

// GetLimitsResponse carries the amount and period bounds in force.
type GetLimitsResponse struct {
	MinLoanAmount       int64 `json:"min_loan_amount"`
	MaxLoanAmount       int64 `json:"max_loan_amount"`
	MinLoanPeriodMonths int   `json:"min_loan_period_months"`
	MaxLoanPeriodMonths int   `json:"max_loan_period_months"`
}
