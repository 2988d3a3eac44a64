package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ---------------------------------------------------------------------------
// Personal code parsing and checksum validation
// ---------------------------------------------------------------------------

// personalCodeLength is the fixed length of an Estonian-format personal code:
// century digit, YYMMDD birth date, three-digit serial, check digit.
const personalCodeLength = 11

// ErrInvalidPersonalCode is returned for any structurally invalid code.
var ErrInvalidPersonalCode = errors.New("invalid personal ID code")

// PersonalCode holds the attributes extracted from a syntactically valid code.
type PersonalCode struct {
	// BirthDate is the calendar-validated date of birth, at midnight UTC.
	BirthDate time.Time
	// SegmentKey is the integer value of the last four digits, in [0, 9999].
	SegmentKey int
}

// ParsePersonalCode extracts the birth date and credit-segment key from a
// personal code. The century is resolved from the first digit (1,2 -> 1800s;
// 3,4 -> 1900s; 5..8 -> 2000s) and the assembled date must be a real calendar
// date. The function has no side effects and performs no checksum validation;
// see ValidateChecksum for that.
func ParsePersonalCode(code string) (PersonalCode, error) {
	if len(code) != personalCodeLength {
		return PersonalCode{}, fmt.Errorf("%w: expected %d digits, got %d", ErrInvalidPersonalCode, personalCodeLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return PersonalCode{}, fmt.Errorf("%w: non-digit character at position %d", ErrInvalidPersonalCode, i)
		}
	}

	var century int
	switch code[0] {
	case '1', '2':
		century = 1800
	case '3', '4':
		century = 1900
	case '5', '6', '7', '8':
		century = 2000
	default:
		return PersonalCode{}, fmt.Errorf("%w: unassigned century digit %c", ErrInvalidPersonalCode, code[0])
	}

	// Digit-only substrings; Atoi cannot fail after the scan above.
	yearSuffix, _ := strconv.Atoi(code[1:3])
	month, _ := strconv.Atoi(code[3:5])
	day, _ := strconv.Atoi(code[5:7])
	segmentKey, _ := strconv.Atoi(code[7:])

	year := century + yearSuffix
	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflowing components (month 13, Feb 30), so a
	// changed round-trip means the digits did not form a real date.
	if birthDate.Year() != year || int(birthDate.Month()) != month || birthDate.Day() != day {
		return PersonalCode{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid calendar date", ErrInvalidPersonalCode, year, month, day)
	}

	return PersonalCode{BirthDate: birthDate, SegmentKey: segmentKey}, nil
}

var (
	checksumWeightsFirst  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	checksumWeightsSecond = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// ValidateChecksum verifies the mod-11 check digit of a personal code using
// the standard two-pass Estonian algorithm. It is an independent collaborator:
// callers decide whether to apply it before parsing.
func ValidateChecksum(code string) error {
	if len(code) != personalCodeLength {
		return fmt.Errorf("%w: expected %d digits, got %d", ErrInvalidPersonalCode, personalCodeLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: non-digit character at position %d", ErrInvalidPersonalCode, i)
		}
	}

	if want := checkDigit(code); int(code[10]-'0') != want {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidPersonalCode)
	}
	return nil
}

// checkDigit computes the expected check digit for the first ten digits.
func checkDigit(code string) int {
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(code[i]-'0') * checksumWeightsFirst[i]
	}
	if r := sum % 11; r < 10 {
		return r
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(code[i]-'0') * checksumWeightsSecond[i]
	}
	if r := sum % 11; r < 10 {
		return r
	}
	return 0
}
