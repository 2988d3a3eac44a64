package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
)

func TestParsePersonalCode_ValidCode(t *testing.T) {
	code, err := service.ParsePersonalCode("39001017502")
	require.NoError(t, err)

	assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), code.BirthDate)
	assert.Equal(t, 7502, code.SegmentKey)
}

func TestParsePersonalCode_CenturyDigits(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantYear int
	}{
		{"1800s male", "18512157501", 1885},
		{"1800s female", "29001017501", 1890},
		{"1900s male", "35001017505", 1950},
		{"2000s female", "60802297507", 2008},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := service.ParsePersonalCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, code.BirthDate.Year())
		})
	}
}

func TestParsePersonalCode_LeapDay(t *testing.T) {
	code, err := service.ParsePersonalCode("60802297507")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2008, time.February, 29, 0, 0, 0, 0, time.UTC), code.BirthDate)
}

func TestParsePersonalCode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"too short", "3900101750"},
		{"too long", "390010175021"},
		{"non-digit", "3900101750a"},
		{"embedded space", "39001 17502"},
		{"unassigned century digit 0", "09001017502"},
		{"unassigned century digit 9", "99001017502"},
		{"month 13", "39013017502"},
		{"day 32", "39001327502"},
		{"february 30", "39002300001"},
		{"february 29 in a non-leap year", "39002290001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePersonalCode(tt.code)
			assert.ErrorIs(t, err, service.ErrInvalidPersonalCode)
		})
	}
}

func TestValidateChecksum(t *testing.T) {
	valid := []string{
		"39001017502",
		"39001015007",
		"39001012506",
		"39001010000",
		"51506017506",
	}
	for _, code := range valid {
		assert.NoError(t, service.ValidateChecksum(code), "code %s", code)
	}
}

func TestValidateChecksum_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"corrupted check digit", "39001017503"},
		{"corrupted payload digit", "39001117502"},
		{"too short", "3900101750"},
		{"non-digit", "3900101750x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, service.ValidateChecksum(tt.code), service.ErrInvalidPersonalCode)
		})
	}
}
