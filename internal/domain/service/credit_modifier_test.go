package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

func TestSegmentForKey_Boundaries(t *testing.T) {
	tests := []struct {
		key  int
		want valueobject.CreditSegment
	}{
		{0, valueobject.CreditSegmentDebt},
		{2499, valueobject.CreditSegmentDebt},
		{2500, valueobject.CreditSegment1},
		{4999, valueobject.CreditSegment1},
		{5000, valueobject.CreditSegment2},
		{7499, valueobject.CreditSegment2},
		{7500, valueobject.CreditSegment3},
		{9999, valueobject.CreditSegment3},
	}

	for _, tt := range tests {
		assert.True(t, service.SegmentForKey(tt.key).Equal(tt.want), "key %d", tt.key)
	}
}

func TestSegmentForKey_TotalOverDomain(t *testing.T) {
	modifiers := service.CreditModifiers{Segment1: 100, Segment2: 300, Segment3: 1000}

	for key := 0; key <= 9999; key++ {
		segment := service.SegmentForKey(key)
		modifier := modifiers.ModifierFor(segment)

		if key < 2500 {
			assert.Zero(t, modifier, "key %d must map to the debt sentinel", key)
		} else {
			assert.Positive(t, modifier, "key %d must map to a positive modifier", key)
		}
	}
}

func TestCreditModifiers_ModifierFor(t *testing.T) {
	modifiers := service.CreditModifiers{Segment1: 100, Segment2: 300, Segment3: 1000}

	assert.Equal(t, int64(0), modifiers.ModifierFor(valueobject.CreditSegmentDebt))
	assert.Equal(t, int64(100), modifiers.ModifierFor(valueobject.CreditSegment1))
	assert.Equal(t, int64(300), modifiers.ModifierFor(valueobject.CreditSegment2))
	assert.Equal(t, int64(1000), modifiers.ModifierFor(valueobject.CreditSegment3))
}
