package isodate

import "fmt"

// UTCOffset is a fixed displacement from UTC. It has no daylight-saving or
// historical-rule awareness.
type UTCOffset struct {
	Negative bool
	Hours    int // 0..23
	Minutes  int // 0..59
}

// NewUTCOffset validates the offset magnitude.
func NewUTCOffset(negative bool, hours, minutes int) (UTCOffset, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return UTCOffset{}, fmt.Errorf("offset %02d:%02d: %w", hours, minutes, ErrOverflow)
	}
	return UTCOffset{Negative: negative, Hours: hours, Minutes: minutes}, nil
}

// TotalMinutes returns the signed offset in minutes east of UTC.
func (o UTCOffset) TotalMinutes() int64 {
	m := int64(o.Hours)*60 + int64(o.Minutes)
	if o.Negative {
		return -m
	}
	return m
}

// ParseUTCOffset parses "±hh", "±hhmm" or "±hh:mm". A digit that yields an
// out-of-range hour or minute is ErrOverflow; a byte that is not a digit at
// all (or a misplaced colon) is ErrInvalidCharacter.
func ParseUTCOffset(s string) (UTCOffset, error) {
	var hourStr, minStr string
	switch len(s) {
	case 3:
		hourStr = s[1:3]
	case 5:
		hourStr, minStr = s[1:3], s[3:5]
	case 6:
		if s[3] != ':' {
			return UTCOffset{}, fmt.Errorf("offset %q: %w", s, ErrInvalidCharacter)
		}
		hourStr, minStr = s[1:3], s[4:6]
	default:
		return UTCOffset{}, fmt.Errorf("offset %q: %w", s, ErrInvalidLength)
	}

	var negative bool
	switch s[0] {
	case '+':
	case '-':
		negative = true
	default:
		return UTCOffset{}, fmt.Errorf("offset %q: %w", s, ErrInvalidCharacter)
	}

	hours, err := atoi2(hourStr)
	if err != nil {
		return UTCOffset{}, fmt.Errorf("offset %q: %w", s, err)
	}
	var minutes int
	if minStr != "" {
		if minutes, err = atoi2(minStr); err != nil {
			return UTCOffset{}, fmt.Errorf("offset %q: %w", s, err)
		}
	}
	return NewUTCOffset(negative, hours, minutes)
}

// atoi2 converts exactly two ASCII digits.
func atoi2(s string) (int, error) {
	a, b := int(s[0]-'0'), int(s[1]-'0')
	if a < 0 || a > 9 || b < 0 || b > 9 {
		return 0, ErrInvalidCharacter
	}
	return a*10 + b, nil
}

// TimeZone is either UTC or a fixed offset. The zero value is UTC. UTC and
// an explicit +00:00 offset are distinct values with distinct textual forms
// but identical offset arithmetic.
type TimeZone struct {
	offset UTCOffset
	fixed  bool
}

// UTC is the UTC time zone, rendered as "Z".
var UTC = TimeZone{}

// FixedZone wraps an offset as a TimeZone.
func FixedZone(o UTCOffset) TimeZone {
	return TimeZone{offset: o, fixed: true}
}

// IsUTC reports whether the zone is the UTC designator (not a zero offset).
func (tz TimeZone) IsUTC() bool { return !tz.fixed }

// Offset returns the fixed offset and whether the zone carries one. For UTC
// the offset is zero and ok is false.
func (tz TimeZone) Offset() (o UTCOffset, ok bool) {
	return tz.offset, tz.fixed
}

// OffsetMinutes returns the zone's displacement from UTC in minutes.
func (tz TimeZone) OffsetMinutes() int64 {
	if !tz.fixed {
		return 0
	}
	return tz.offset.TotalMinutes()
}

// ParseTimeZone parses a zone designator: "Z" or a fixed offset.
func ParseTimeZone(s string) (TimeZone, error) {
	if s == "Z" {
		return UTC, nil
	}
	switch len(s) {
	case 3, 5, 6:
		o, err := ParseUTCOffset(s)
		if err != nil {
			return TimeZone{}, err
		}
		return FixedZone(o), nil
	}
	return TimeZone{}, fmt.Errorf("zone %q: %w", s, ErrInvalidLength)
}
