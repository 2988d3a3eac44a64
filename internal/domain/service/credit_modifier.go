package service

import (
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Credit segmentation
// ---------------------------------------------------------------------------

// CreditModifiers holds the configured per-segment multipliers. The debt
// segment has no field: its modifier is always zero, the sentinel for
// "no loan possible regardless of period".
type CreditModifiers struct {
	Segment1 int64
	Segment2 int64
	Segment3 int64
}

// SegmentForKey maps a segment key onto its credit segment:
//
//	0000...2499 -> debt
//	2500...4999 -> segment 1
//	5000...7499 -> segment 2
//	7500...9999 -> segment 3
//
// The function is total over [0, 9999]; ParsePersonalCode guarantees the key
// is within that domain.
func SegmentForKey(key int) valueobject.CreditSegment {
	switch {
	case key < 2500:
		return valueobject.CreditSegmentDebt
	case key < 5000:
		return valueobject.CreditSegment1
	case key < 7500:
		return valueobject.CreditSegment2
	default:
		return valueobject.CreditSegment3
	}
}

// ModifierFor returns the configured multiplier for a segment. Debt resolves
// to zero.
func (m CreditModifiers) ModifierFor(segment valueobject.CreditSegment) int64 {
	switch {
	case segment.Equal(valueobject.CreditSegment1):
		return m.Segment1
	case segment.Equal(valueobject.CreditSegment2):
		return m.Segment2
	case segment.Equal(valueobject.CreditSegment3):
		return m.Segment3
	default:
		return 0
	}
}
