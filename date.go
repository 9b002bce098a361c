package isodate

import (
	"fmt"
	"math"
)

// Date is a proleptic-Gregorian calendar date. Year follows the astronomical
// convention: year 0 exists and years before it are negative. Dates are plain
// comparable values; construct them through NewDate or one of the
// conversions.
type Date struct {
	Year  int64
	Month int // 1..12
	Day   int // 1..DaysInMonth(Year, Month)
}

// Days in whole cycles of the Gregorian leap rule.
const (
	daysPer400Years = 365*400 + 97 // 146097
	daysPer100Years = 365*100 + 24 // 36524
	daysPer4Years   = 365*4 + 1    // 1461
)

// daysBefore[m] is the number of days in a non-leap year before month m+1
// begins. The last entry is the full year.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// NewDate validates year/month/day and returns the Date.
func NewDate(year int64, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d: %w", month, ErrInvalidMonth)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d of %d-%02d: %w", day, year, month, ErrInvalidDay)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid input. Callers must only
// pass values they have already validated.
func MustDate(year int64, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic("isodate: MustDate: " + err.Error())
	}
	return d
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule,
// applied uniformly to zero and negative years.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsLeapYear reports whether the date's year is a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.Year) }

// DaysInMonth returns the length of (year, month) in days.
func DaysInMonth(year int64, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DaysInMonth returns the length of the date's month in days.
func (d Date) DaysInMonth() int { return DaysInMonth(d.Year, d.Month) }

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int64) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInYear returns the length of the date's year in days.
func (d Date) DaysInYear() int { return DaysInYear(d.Year) }

// DayOfYear returns the 0-indexed day within the year: January 1 is 0.
func (d Date) DayOfYear() int {
	yd := daysBefore[d.Month-1] + d.Day - 1
	if d.Month > 2 && IsLeapYear(d.Year) {
		yd++
	}
	return yd
}

// DateFromDayOfYear is the inverse of DayOfYear. day is 0-indexed; values
// past the end of the year return ErrOverflow.
func DateFromDayOfYear(year int64, day int) (Date, error) {
	if day < 0 || day >= DaysInYear(year) {
		return Date{}, fmt.Errorf("day %d of year %d: %w", day, year, ErrOverflow)
	}
	if IsLeapYear(year) {
		switch {
		case day == 31+29-1:
			return Date{Year: year, Month: 2, Day: 29}, nil
		case day > 31+29-1:
			// Past the leap day; pretend it wasn't there.
			day--
		}
	}
	// Every month has at most 31 days, so day/31 underestimates the month by
	// at most one.
	month := day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}
	return Date{Year: year, Month: month + 1, Day: day - begin + 1}, nil
}

// DayIndex returns the linear day count since 0000-01-01 (day 0). Years far
// enough out that the count does not fit in an int64 saturate at the int64
// bounds.
func (d Date) DayIndex() int64 {
	return dayIndex(d.Year, int64(d.DayOfYear()))
}

// dayIndex converts (year, 0-indexed day of year) to a day index.
//
// The decomposition works on whole 400-year cycles (146097 days each),
// then 100-year (36524) and 4-year (1461) sub-cycles, anchored at year 1 so
// that the leap year lands last in each 4-year block. Day 0 of the anchor,
// 0001-01-01, sits at index 366.
func dayIndex(year, yday int64) int64 {
	if year == math.MinInt64 {
		return math.MinInt64
	}
	y := year - 1
	n := floorDiv(y, 400)
	y -= 400 * n // now 0 <= y < 400

	c := y / 100
	y -= 100 * c
	rem := daysPer100Years * c

	q := y / 4
	y -= 4 * q
	rem += daysPer4Years * q

	rem += 365*y + 366 + yday

	// The cycle product alone can overflow for an index that still fits
	// once the in-cycle remainder is added; the remainder is under two
	// cycles, so shifting up to two cycles inward always disambiguates
	// real overflow from a representable result.
	sign := int64(1)
	if n > 0 {
		sign = -1
	}
	cycles, ok := mul64(daysPer400Years, n)
	for try := 0; try < 2 && !ok; try++ {
		n += sign
		rem -= sign * daysPer400Years
		cycles, ok = mul64(daysPer400Years, n)
	}
	if !ok {
		if sign < 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	out, ok := add64(cycles, rem)
	if !ok {
		if cycles > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return out
}

// DateFromDayIndex is the exact inverse of DayIndex. It is total: every
// int64 day index maps to a date.
func DateFromDayIndex(idx int64) Date {
	year, yday := yearOfDayIndex(idx)
	d, err := DateFromDayOfYear(year, yday)
	if err != nil {
		// yearOfDayIndex always produces an in-range day of year.
		panic("isodate: DateFromDayIndex: " + err.Error())
	}
	return d
}

// yearOfDayIndex splits a day index into (year, 0-indexed day of year),
// undoing dayIndex. The 100-year and 1-year quotients both read 4 on the
// last day of their enclosing cycle's final leap year; the n -= n >> 2
// correction cuts them back to 3.
func yearOfDayIndex(idx int64) (year int64, yday int) {
	var adj int64
	if idx < math.MinInt64+366+daysPer400Years {
		// Shift by one whole 400-year cycle so that both the anchor
		// subtraction and the cycle-start computation below stay in range;
		// compensate in the final year.
		idx += daysPer400Years
		adj = -400
	}
	d := idx - 366

	r := d % daysPer400Years
	if r < 0 {
		r += daysPer400Years
	}
	y := 400 * ((d - r) / daysPer400Years)

	n := r / daysPer100Years
	n -= n >> 2
	y += 100 * n
	r -= daysPer100Years * n

	n = r / daysPer4Years
	y += 4 * n
	r -= daysPer4Years * n

	n = r / 365
	n -= n >> 2
	y += n
	r -= 365 * n

	return y + 1 + adj, int(r)
}

// Weekday returns the day of the week. Day index 0 (0000-01-01) falls on a
// Saturday, so the Monday-based weekday is (index - 2) mod 7.
func (d Date) Weekday() Weekday {
	return weekdayOfIndex(d.DayIndex())
}

func weekdayOfIndex(idx int64) Weekday {
	return Weekday(floorMod(idx-2, 7))
}

// WeekDate is the ISO week-date view of a Date: (year, week 1..53, weekday).
// It is derived by Date.WeekDate and is never the source of truth.
type WeekDate struct {
	Year int64
	Week int
	Day  Weekday
}

// WeekDate returns the ISO week date of d. Dates before the year's first ISO
// week belong to the last week of the prior year; dates on or after the
// following year's first week belong to its week 1.
func (d Date) WeekDate() WeekDate {
	idx := d.DayIndex()
	wd := weekdayOfIndex(idx)

	first := weekOneMonday(d.Year)
	if idx < first {
		// December 28 always sits in the last ISO week of its year.
		last := Date{Year: d.Year - 1, Month: 12, Day: 28}.WeekDate()
		return WeekDate{Year: d.Year - 1, Week: last.Week, Day: wd}
	}
	if idx >= nextWeekOneMonday(d.Year) {
		return WeekDate{Year: d.Year + 1, Week: 1, Day: wd}
	}
	return WeekDate{Year: d.Year, Week: int((idx-first)/7) + 1, Day: wd}
}

// weekOneMonday returns the day index of the Monday opening ISO week 1 of
// year: the Monday of the week containing the year's first Thursday.
func weekOneMonday(year int64) int64 {
	jan1 := dayIndex(year, 0)
	if off := int64(weekdayOfIndex(jan1)); off <= int64(Thursday) {
		return jan1 - off
	} else {
		return jan1 + 7 - off
	}
}

// nextWeekOneMonday returns the day index of week 1 day 1 of year+1, derived
// from December 28 of year.
func nextWeekOneMonday(year int64) int64 {
	dec28 := dayIndex(year, int64(DaysInYear(year)-4))
	return dec28 - int64(weekdayOfIndex(dec28)) + 7
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year.
func WeeksInYear(year int64) int {
	return Date{Year: year, Month: 12, Day: 28}.WeekDate().Week
}

// DateFromWeekDate converts an ISO week date back to a calendar date. Weeks
// outside 1..WeeksInYear(year) and weekdays outside Monday..Sunday return
// ErrOverflow.
func DateFromWeekDate(year int64, week int, day Weekday) (Date, error) {
	if day < Monday || day > Sunday {
		return Date{}, fmt.Errorf("weekday %d: %w", int(day), ErrOverflow)
	}
	if week < 1 || week > WeeksInYear(year) {
		return Date{}, fmt.Errorf("week %d of year %d: %w", week, year, ErrOverflow)
	}
	idx := weekOneMonday(year) + int64(week-1)*7 + int64(day)
	return DateFromDayIndex(idx), nil
}

// ToDate converts the week-date view back to a calendar date.
func (w WeekDate) ToDate() (Date, error) {
	return DateFromWeekDate(w.Year, w.Week, w.Day)
}

// Add returns the date shifted by the given amount of the given unit,
// carrying through datetime arithmetic at midnight UTC. Sub-day units wrap
// around midnight and surface as day shifts.
func (d Date) Add(unit Unit, amount int64) Date {
	dt := DateTime{Date: d}
	dt.AddSelf(unit, amount)
	return dt.Date
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder of floorDiv; for b > 0 the result is in [0, b).
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// add64 adds with an explicit overflow report.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// satAdd adds, clamping to the int64 bounds on overflow.
func satAdd(a, b int64) int64 {
	if s, ok := add64(a, b); ok {
		return s
	}
	if a > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

// mul64 multiplies with an explicit overflow report.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}

// satMul multiplies, clamping to the int64 bounds on overflow.
func satMul(a, b int64) int64 {
	if p, ok := mul64(a, b); ok {
		return p
	}
	if (a > 0) == (b > 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}
