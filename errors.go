package isodate

import "errors"

// Errors returned by constructors and the ISO 8601 codec. Parse entry points
// wrap these with positional context; match with errors.Is.
var (
	// ErrInvalidMonth is returned when a month is outside 1..12.
	ErrInvalidMonth = errors.New("month out of range")

	// ErrInvalidDay is returned when a day of month is outside the range
	// valid for its year and month.
	ErrInvalidDay = errors.New("day out of range")

	// ErrOverflow is returned when a parsed or computed field value exceeds
	// its valid semantic range (week count, day of year, hour, minute,
	// second, zone offset magnitude).
	ErrOverflow = errors.New("value out of range")

	// ErrInvalidCharacter is returned for an unexpected byte at a scan
	// position.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength is returned when a zone string has an unrecognized
	// length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrEndOfBuffer is returned when the input ends in the middle of a
	// field.
	ErrEndOfBuffer = errors.New("unexpected end of input")

	// ErrBufferTooLarge is returned for inputs longer than 64 bytes.
	ErrBufferTooLarge = errors.New("input exceeds 64 bytes")

	// ErrConflictingFormat is returned when part of the input is in basic
	// format and another part is in extended format.
	ErrConflictingFormat = errors.New("conflicting basic/extended format")

	// ErrConflictingDateType is returned when the input mixes calendar,
	// ordinal and week date designations.
	ErrConflictingDateType = errors.New("conflicting date type")
)
