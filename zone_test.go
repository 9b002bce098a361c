package isodate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUTCOffset(t *testing.T) {
	tests := []struct {
		in   string
		want UTCOffset
		err  error
	}{
		{in: "+23:59", want: UTCOffset{Hours: 23, Minutes: 59}},
		{in: "-04:00", want: UTCOffset{Negative: true, Hours: 4}},
		{in: "+0530", want: UTCOffset{Hours: 5, Minutes: 30}},
		{in: "-0930", want: UTCOffset{Negative: true, Hours: 9, Minutes: 30}},
		{in: "+05", want: UTCOffset{Hours: 5}},
		{in: "-00", want: UTCOffset{Negative: true}},
		{in: "+24:00", err: ErrOverflow},
		{in: "+12:60", err: ErrOverflow},
		{in: "-2400", err: ErrOverflow},
		{in: "+2", err: ErrInvalidLength},
		{in: "+123", err: ErrInvalidLength},
		{in: "+12:345", err: ErrInvalidLength},
		{in: "", err: ErrInvalidLength},
		{in: "Z00", err: ErrInvalidCharacter},
		{in: "+ab", err: ErrInvalidCharacter},
		{in: "+12x34", err: ErrInvalidCharacter},
		{in: "+12:3x", err: ErrInvalidCharacter},
		{in: "~05:00", err: ErrInvalidCharacter},
	}
	for _, tt := range tests {
		got, err := ParseUTCOffset(tt.in)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "input %q", tt.in)
			continue
		}
		assert.Equal(t, nil, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseTimeZone(t *testing.T) {
	tz, err := ParseTimeZone("Z")
	assert.Equal(t, nil, err)
	assert.Equal(t, UTC, tz)

	tz, err = ParseTimeZone("-04:00")
	assert.Equal(t, nil, err)
	assert.Equal(t, FixedZone(UTCOffset{Negative: true, Hours: 4}), tz)

	_, err = ParseTimeZone("UTC")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
	_, err = ParseTimeZone("ZZ")
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ParseTimeZone("")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestUTCVersusZeroOffset(t *testing.T) {
	zero := FixedZone(UTCOffset{})

	// Distinct values and spellings, identical arithmetic.
	assert.NotEqual(t, UTC, zero)
	assert.Equal(t, int64(0), UTC.OffsetMinutes())
	assert.Equal(t, int64(0), zero.OffsetMinutes())
	assert.Equal(t, "Z", UTC.String())
	assert.Equal(t, "+00:00", zero.String())
	assert.True(t, UTC.IsUTC())
	assert.False(t, zero.IsUTC())
}

func TestOffsetMinutes(t *testing.T) {
	assert.Equal(t, int64(-240), FixedZone(UTCOffset{Negative: true, Hours: 4}).OffsetMinutes())
	assert.Equal(t, int64(330), FixedZone(UTCOffset{Hours: 5, Minutes: 30}).OffsetMinutes())

	_, err := NewUTCOffset(false, 24, 0)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = NewUTCOffset(false, 0, 60)
	assert.ErrorIs(t, err, ErrOverflow)
}
