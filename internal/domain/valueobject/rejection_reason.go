package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RejectionReason – immutable value object
// ---------------------------------------------------------------------------

// RejectionReason classifies why a loan request was not approved. The set is
// closed: every rejection the engine can produce carries exactly one of these.
type RejectionReason struct {
	value string
}

const (
	reasonInvalidPersonalCode = "INVALID_PERSONAL_CODE"
	reasonAgeRestricted       = "AGE_RESTRICTED"
	reasonInvalidLoanAmount   = "INVALID_LOAN_AMOUNT"
	reasonInvalidLoanPeriod   = "INVALID_LOAN_PERIOD"
	reasonNoValidLoan         = "NO_VALID_LOAN"
)

var (
	RejectionInvalidPersonalCode = RejectionReason{value: reasonInvalidPersonalCode}
	RejectionAgeRestricted       = RejectionReason{value: reasonAgeRestricted}
	RejectionInvalidLoanAmount   = RejectionReason{value: reasonInvalidLoanAmount}
	RejectionInvalidLoanPeriod   = RejectionReason{value: reasonInvalidLoanPeriod}
	RejectionNoValidLoan         = RejectionReason{value: reasonNoValidLoan}
)

var validRejectionReasons = map[string]RejectionReason{
	reasonInvalidPersonalCode: RejectionInvalidPersonalCode,
	reasonAgeRestricted:       RejectionAgeRestricted,
	reasonInvalidLoanAmount:   RejectionInvalidLoanAmount,
	reasonInvalidLoanPeriod:   RejectionInvalidLoanPeriod,
	reasonNoValidLoan:         RejectionNoValidLoan,
}

// NewRejectionReason creates a RejectionReason from a raw string.
func NewRejectionReason(s string) (RejectionReason, error) {
	v, ok := validRejectionReasons[s]
	if !ok {
		return RejectionReason{}, fmt.Errorf("invalid rejection reason: %q", s)
	}
	return v, nil
}

// String returns the string representation of the reason.
func (r RejectionReason) String() string { return r.value }

// IsZero returns true if the reason has not been initialised.
func (r RejectionReason) IsZero() bool { return r.value == "" }

// Equal returns true when both reasons carry the same value.
func (r RejectionReason) Equal(other RejectionReason) bool { return r.value == other.value }
