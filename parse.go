package isodate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// The ISO 8601 decoder is a single left-to-right scan that records the byte
// span of every field it meets and infers two classifications as it goes:
// basic vs extended format (separators or not) and calendar vs ordinal vs
// week date type. Once either classification is established every later
// field has to agree. Field spans are only turned into integers and
// range-checked after the scan succeeds, so the scanner itself reasons about
// digit counts, never values.

// maxInputLen caps accepted input; longer strings are ErrBufferTooLarge.
const maxInputLen = 64

type format int

const (
	formatUnknown format = iota
	formatBasic
	formatExtended
)

type dateKind int

const (
	dateKindUnknown dateKind = iota
	dateKindCalendar
	dateKindOrdinal
	dateKindWeek
)

type parseMode int

const (
	modeDate parseMode = iota
	modeTime
	modeDateTime
)

// span is a half-open byte range in the input; a zero span marks an absent
// field.
type span struct {
	start, end int
}

func (s span) present() bool { return s.end > s.start }

type scanner struct {
	buf  []byte
	i    int
	mode parseMode

	format   format
	dateKind dateKind

	year, month, week, day         span
	hour, minute, second, fraction span
	zone                           span
}

func errAt(err error, pos int) error {
	return fmt.Errorf("position %d: %w", pos, err)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (s *scanner) eof() bool { return s.i >= len(s.buf) }

func (s *scanner) peek() (byte, bool) {
	if s.eof() {
		return 0, false
	}
	return s.buf[s.i], true
}

// setFormat records the inferred format or fails if a different one was
// already established.
func (s *scanner) setFormat(f format) error {
	if s.format == formatUnknown {
		s.format = f
		return nil
	}
	if s.format != f {
		return errAt(ErrConflictingFormat, s.i)
	}
	return nil
}

// setDateKind records the inferred date type or fails on disagreement.
func (s *scanner) setDateKind(k dateKind) error {
	if s.dateKind == dateKindUnknown {
		s.dateKind = k
		return nil
	}
	if s.dateKind != k {
		return errAt(ErrConflictingDateType, s.i)
	}
	return nil
}

// digits consumes exactly n digits and returns their span.
func (s *scanner) digits(n int) (span, error) {
	start := s.i
	for k := 0; k < n; k++ {
		if s.eof() {
			return span{}, errAt(ErrEndOfBuffer, s.i)
		}
		if !isDigit(s.buf[s.i]) {
			return span{}, errAt(ErrInvalidCharacter, s.i)
		}
		s.i++
	}
	return span{start: start, end: s.i}, nil
}

// digitRun counts consecutive digits at the cursor without consuming them.
func (s *scanner) digitRun() int {
	n := 0
	for s.i+n < len(s.buf) && isDigit(s.buf[s.i+n]) {
		n++
	}
	return n
}

// restIsZone captures everything from the cursor to the end as the zone
// span. Zone syntax is validated later by ParseTimeZone, never here.
func (s *scanner) restIsZone() {
	if !s.eof() {
		s.zone = span{start: s.i, end: len(s.buf)}
		s.i = len(s.buf)
	}
}

// scanYear reads the year field. A leading sign forces extended format and
// allows arbitrarily many digits. Without a sign the year takes four
// digits, except that a digit run longer than eight absorbs run-4 digits
// (expanded year in basic format, e.g. 020230515 for year 2023).
func (s *scanner) scanYear() error {
	start := s.i
	if c, ok := s.peek(); ok && (c == '+' || c == '-') {
		if err := s.setFormat(formatExtended); err != nil {
			return err
		}
		s.i++
		run := s.digitRun()
		if run < 4 {
			if s.i+run >= len(s.buf) {
				return errAt(ErrEndOfBuffer, len(s.buf))
			}
			return errAt(ErrInvalidCharacter, s.i+run)
		}
		s.i += run
		s.year = span{start: start, end: s.i}
		return nil
	}

	run := s.digitRun()
	if run < 4 {
		if s.i+run >= len(s.buf) {
			return errAt(ErrEndOfBuffer, len(s.buf))
		}
		return errAt(ErrInvalidCharacter, s.i+run)
	}
	n := 4
	if run > 8 {
		n = run - 4
	}
	s.i += n
	s.year = span{start: start, end: s.i}
	return nil
}

// scanDate reads the date body after the year, inferring the date type from
// the first byte: W opens a basic week date, a separator opens any of the
// extended forms, a digit opens a basic calendar or ordinal body.
func (s *scanner) scanDate() error {
	if err := s.scanYear(); err != nil {
		return err
	}
	c, ok := s.peek()
	if !ok {
		return errAt(ErrEndOfBuffer, s.i)
	}
	switch {
	case c == 'W':
		s.i++
		if err := s.setFormat(formatBasic); err != nil {
			return err
		}
		if err := s.setDateKind(dateKindWeek); err != nil {
			return err
		}
		return s.scanWeekBody()

	case c == '-':
		s.i++
		if err := s.setFormat(formatExtended); err != nil {
			return err
		}
		c2, ok := s.peek()
		if !ok {
			return errAt(ErrEndOfBuffer, s.i)
		}
		if c2 == 'W' {
			s.i++
			if err := s.setDateKind(dateKindWeek); err != nil {
				return err
			}
			return s.scanWeekBody()
		}
		if s.digitRun() == 3 {
			// Three digits between separators can only be an ordinal day.
			if err := s.setDateKind(dateKindOrdinal); err != nil {
				return err
			}
			sp, err := s.digits(3)
			if err != nil {
				return err
			}
			s.day = sp
			return nil
		}
		if err := s.setDateKind(dateKindCalendar); err != nil {
			return err
		}
		sp, err := s.digits(2)
		if err != nil {
			return err
		}
		s.month = sp
		c3, ok := s.peek()
		if !ok {
			return errAt(ErrEndOfBuffer, s.i)
		}
		if c3 != '-' {
			return errAt(ErrInvalidCharacter, s.i)
		}
		s.i++
		if sp, err = s.digits(2); err != nil {
			return err
		}
		s.day = sp
		return nil

	case isDigit(c):
		if err := s.setFormat(formatBasic); err != nil {
			return err
		}
		if s.digitRun() == 3 {
			// DDD then end of date: basic ordinal.
			if err := s.setDateKind(dateKindOrdinal); err != nil {
				return err
			}
			sp, err := s.digits(3)
			if err != nil {
				return err
			}
			s.day = sp
			return nil
		}
		if err := s.setDateKind(dateKindCalendar); err != nil {
			return err
		}
		sp, err := s.digits(2)
		if err != nil {
			return err
		}
		s.month = sp
		if sp, err = s.digits(2); err != nil {
			return err
		}
		s.day = sp
		return nil

	default:
		return errAt(ErrInvalidCharacter, s.i)
	}
}

// scanWeekBody reads ww[-]d after the W marker. The separator before the
// weekday decides (and must agree with) the format.
func (s *scanner) scanWeekBody() error {
	sp, err := s.digits(2)
	if err != nil {
		return err
	}
	s.week = sp
	c, ok := s.peek()
	if !ok {
		return errAt(ErrEndOfBuffer, s.i)
	}
	if c == '-' {
		if err := s.setFormat(formatExtended); err != nil {
			return err
		}
		s.i++
	} else if err := s.setFormat(formatBasic); err != nil {
		return err
	}
	if sp, err = s.digits(1); err != nil {
		return err
	}
	s.day = sp
	return nil
}

// scanTime reads HH[[:]MM[[:]SS[.fraction]]] and leaves any tail to the
// zone span. Every field is exactly two digits; separators must agree with
// whatever format the date half established.
func (s *scanner) scanTime() error {
	sp, err := s.digits(2)
	if err != nil {
		return err
	}
	s.hour = sp

	if s.eof() {
		return nil
	}
	switch c := s.buf[s.i]; {
	case c == ':':
		if err := s.setFormat(formatExtended); err != nil {
			return err
		}
		s.i++
	case isDigit(c):
		if err := s.setFormat(formatBasic); err != nil {
			return err
		}
	default:
		s.restIsZone()
		return nil
	}
	if sp, err = s.digits(2); err != nil {
		return err
	}
	s.minute = sp

	if s.eof() {
		return nil
	}
	switch c := s.buf[s.i]; {
	case c == ':':
		if err := s.setFormat(formatExtended); err != nil {
			return err
		}
		s.i++
	case isDigit(c):
		if err := s.setFormat(formatBasic); err != nil {
			return err
		}
	default:
		s.restIsZone()
		return nil
	}
	if sp, err = s.digits(2); err != nil {
		return err
	}
	s.second = sp

	if c, ok := s.peek(); ok && (c == '.' || c == ',') {
		s.i++
		if err := s.scanFraction(); err != nil {
			return err
		}
	}
	s.restIsZone()
	return nil
}

// scanFraction consumes the digits after the fraction separator; at least
// one is required.
func (s *scanner) scanFraction() error {
	run := s.digitRun()
	if run == 0 {
		if s.eof() {
			return errAt(ErrEndOfBuffer, s.i)
		}
		return errAt(ErrInvalidCharacter, s.i)
	}
	s.fraction = span{start: s.i, end: s.i + run}
	s.i += run
	return nil
}

// scan runs the whole state machine for the given mode.
func scan(input string, mode parseMode) (*scanner, error) {
	if len(input) > maxInputLen {
		return nil, fmt.Errorf("%d bytes: %w", len(input), ErrBufferTooLarge)
	}
	s := &scanner{buf: []byte(input), mode: mode}
	switch mode {
	case modeDate:
		if err := s.scanDate(); err != nil {
			return nil, err
		}
		if !s.eof() {
			return nil, errAt(ErrInvalidCharacter, s.i)
		}
	case modeTime:
		if err := s.scanTime(); err != nil {
			return nil, err
		}
	case modeDateTime:
		if err := s.scanDate(); err != nil {
			return nil, err
		}
		if !s.eof() {
			if s.buf[s.i] != 'T' {
				return nil, errAt(ErrInvalidCharacter, s.i)
			}
			s.i++
			if err := s.scanTime(); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// intField turns a small all-digit span into an int; an absent span is 0.
func (s *scanner) intField(sp span) int {
	n := 0
	for _, c := range s.buf[sp.start:sp.end] {
		n = n*10 + int(c-'0')
	}
	return n
}

// yearValue parses the year span, which may carry a sign and any number of
// digits. Years beyond the int64 range saturate.
func (s *scanner) yearValue() (int64, error) {
	raw := string(s.buf[s.year.start:s.year.end])
	y, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if raw[0] == '-' {
				return math.MinInt64, nil
			}
			return math.MaxInt64, nil
		}
		return 0, fmt.Errorf("year %q: %w", raw, ErrInvalidCharacter)
	}
	return y, nil
}

// dateValue materializes the scanned date spans and range-checks them.
func (s *scanner) dateValue() (Date, error) {
	year, err := s.yearValue()
	if err != nil {
		return Date{}, err
	}
	switch s.dateKind {
	case dateKindCalendar:
		return NewDate(year, s.intField(s.month), s.intField(s.day))
	case dateKindOrdinal:
		d := s.intField(s.day)
		if d < 1 {
			return Date{}, fmt.Errorf("ordinal day %d: %w", d, ErrOverflow)
		}
		return DateFromDayOfYear(year, d-1)
	case dateKindWeek:
		wd, err := WeekdayFromISODigit(s.intField(s.day))
		if err != nil {
			return Date{}, err
		}
		return DateFromWeekDate(year, s.intField(s.week), wd)
	}
	// A successful date scan always sets the date kind.
	panic("isodate: dateValue: unknown date kind")
}

// fractionNanos scales the fraction digits to nanoseconds; digits past the
// ninth are truncated.
func (s *scanner) fractionNanos() int {
	sp := s.fraction
	if !sp.present() {
		return 0
	}
	digits := s.buf[sp.start:sp.end]
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	for k := len(digits); k < 9; k++ {
		n *= 10
	}
	return n
}

// timeValue materializes the scanned time spans. rollover reports the
// 24:00:00 end-of-day form, which the combined-mode caller answers by
// advancing one day; any other hour past 23 is out of range, as is 24:00
// with any nonzero subfield.
func (s *scanner) timeValue() (t Time, rollover bool, err error) {
	h := s.intField(s.hour)
	m := s.intField(s.minute)
	sec := s.intField(s.second)
	ns := s.fractionNanos()

	if h == 24 && m == 0 && sec == 0 && ns == 0 {
		if s.mode == modeDateTime {
			return Time{}, true, nil
		}
		return Time{}, false, fmt.Errorf("hour 24 without a date to roll into: %w", ErrOverflow)
	}
	if h > 23 || m > 59 || sec > 60 {
		return Time{}, false, fmt.Errorf("%02d:%02d:%02d: %w", h, m, sec, ErrOverflow)
	}
	return Time{Hour: h, Minute: m, Second: sec, Nanosecond: ns}, false, nil
}

// zoneValue materializes the zone span; no designator means UTC.
func (s *scanner) zoneValue() (TimeZone, error) {
	if !s.zone.present() {
		return UTC, nil
	}
	return ParseTimeZone(string(s.buf[s.zone.start:s.zone.end]))
}

// ParseDate decodes an ISO 8601 date: calendar (2023-05-15, 20230515),
// ordinal (2023-135, 2023135) or week (2023-W20-1, 2023W201), with optional
// expanded years (+02023-05-15).
func ParseDate(input string) (Date, error) {
	s, err := scan(input, modeDate)
	if err != nil {
		return Date{}, err
	}
	return s.dateValue()
}

// ParseTime decodes an ISO 8601 time of day with an optional trailing zone
// designator: 21:20:43.123-04:00, 212043.123-0400, 21:20, 21Z.
func ParseTime(input string) (Time, TimeZone, error) {
	s, err := scan(input, modeTime)
	if err != nil {
		return Time{}, TimeZone{}, err
	}
	t, _, err := s.timeValue()
	if err != nil {
		return Time{}, TimeZone{}, err
	}
	zone, err := s.zoneValue()
	if err != nil {
		return Time{}, TimeZone{}, err
	}
	return t, zone, nil
}

// ParseDateTime decodes a combined ISO 8601 date and time. The date may
// stand alone (midnight UTC); a T introduces the time. 24:00:00 means
// midnight of the following day. A missing zone designator means UTC.
func ParseDateTime(input string) (DateTime, error) {
	s, err := scan(input, modeDateTime)
	if err != nil {
		return DateTime{}, err
	}
	d, err := s.dateValue()
	if err != nil {
		return DateTime{}, err
	}
	var t Time
	rollover := false
	if s.hour.present() {
		if t, rollover, err = s.timeValue(); err != nil {
			return DateTime{}, err
		}
	}
	zone, err := s.zoneValue()
	if err != nil {
		return DateTime{}, err
	}
	dt := DateTime{Date: d, Time: t, Zone: zone}
	if rollover {
		dt.AddSelf(UnitDays, 1)
	}
	return dt, nil
}

// MustParseDateTime is ParseDateTime but panics on error.
func MustParseDateTime(input string) DateTime {
	dt, err := ParseDateTime(input)
	if err != nil {
		panic("isodate: MustParseDateTime: " + err.Error())
	}
	return dt
}
