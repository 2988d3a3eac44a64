package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CreditSegment – immutable value object
// ---------------------------------------------------------------------------

// CreditSegment represents the credit-risk bucket an applicant belongs to,
// derived from the trailing digits of their personal code.
type CreditSegment struct {
	value string
}

const (
	segmentDebt = "DEBT"
	segmentOne  = "SEGMENT_1"
	segmentTwo  = "SEGMENT_2"
	segmentThr  = "SEGMENT_3"
)

var (
	CreditSegmentDebt = CreditSegment{value: segmentDebt}
	CreditSegment1    = CreditSegment{value: segmentOne}
	CreditSegment2    = CreditSegment{value: segmentTwo}
	CreditSegment3    = CreditSegment{value: segmentThr}
)

var validCreditSegments = map[string]CreditSegment{
	segmentDebt: CreditSegmentDebt,
	segmentOne:  CreditSegment1,
	segmentTwo:  CreditSegment2,
	segmentThr:  CreditSegment3,
}

// NewCreditSegment creates a CreditSegment from a raw string.
func NewCreditSegment(s string) (CreditSegment, error) {
	v, ok := validCreditSegments[s]
	if !ok {
		return CreditSegment{}, fmt.Errorf("invalid credit segment: %q", s)
	}
	return v, nil
}

// String returns the string representation of the segment.
func (s CreditSegment) String() string { return s.value }

// IsZero returns true if the segment has not been initialised.
func (s CreditSegment) IsZero() bool { return s.value == "" }

// Equal returns true when both segments carry the same value.
func (s CreditSegment) Equal(other CreditSegment) bool { return s.value == other.value }
