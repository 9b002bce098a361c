package isodate

import "time"

// Unit is a calendar or clock unit for datetime arithmetic.
type Unit int

const (
	UnitYears Unit = iota
	UnitMonths
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitMilliseconds
	UnitMicroseconds
	UnitNanoseconds
)

var unitNames = [...]string{
	"years", "months", "days", "hours", "minutes",
	"seconds", "milliseconds", "microseconds", "nanoseconds",
}

func (u Unit) String() string {
	if u < UnitYears || u > UnitNanoseconds {
		return "Unit(invalid)"
	}
	return unitNames[u]
}

// DateTime is a Date and a Time interpreted in a TimeZone. The zone tags the
// wall-clock fields; it never changes them except through WithTimeZone,
// which performs a genuine shift.
type DateTime struct {
	Date Date
	Time Time
	Zone TimeZone
}

// NewDateTime fuses a date, a time of day and a zone.
func NewDateTime(d Date, t Time, zone TimeZone) DateTime {
	return DateTime{Date: d, Time: t, Zone: zone}
}

// unixEpoch is 1970-01-01T00:00:00Z.
var unixEpoch = DateTime{Date: Date{Year: 1970, Month: 1, Day: 1}}

// unixEpochDayIndex is the day index of 1970-01-01.
const unixEpochDayIndex = 719528

// Add returns the datetime shifted by amount units, carrying into coarser
// units as needed. Negative amounts borrow: subtracting an hour from
// midnight lands on 23:00 of the previous day.
func (dt DateTime) Add(unit Unit, amount int64) DateTime {
	out := dt
	out.AddSelf(unit, amount)
	return out
}

// AddSelf is Add in place.
func (dt *DateTime) AddSelf(unit Unit, amount int64) {
	if amount == 0 {
		return
	}
	switch unit {
	case UnitYears:
		dt.addYears(amount)
	case UnitMonths:
		dt.addMonths(amount)
	case UnitDays:
		dt.addDays(amount)
	case UnitHours:
		dt.addHours(amount)
	case UnitMinutes:
		dt.addMinutes(amount)
	case UnitSeconds:
		dt.addSeconds(amount)
	case UnitMilliseconds:
		dt.addSubSeconds(amount, 1_000)
	case UnitMicroseconds:
		dt.addSubSeconds(amount, 1_000_000)
	case UnitNanoseconds:
		dt.addNanoseconds(amount)
	default:
		panic("isodate: AddSelf: unknown unit")
	}
}

func (dt *DateTime) addYears(amount int64) {
	dt.Date.Year = satAdd(dt.Date.Year, amount)
	dt.clampDay()
}

func (dt *DateTime) addMonths(amount int64) {
	total := satAdd(int64(dt.Date.Month-1), amount)
	years := floorDiv(total, 12)
	dt.Date.Month = int(total-years*12) + 1
	if years != 0 {
		dt.addYears(years)
		return
	}
	dt.clampDay()
}

// clampDay pulls the day back to the end of the month after a year or month
// shift stranded it past it (e.g. Feb 29 into a non-leap year).
func (dt *DateTime) clampDay() {
	if max := dt.Date.DaysInMonth(); dt.Date.Day > max {
		dt.Date.Day = max
	}
}

func (dt *DateTime) addDays(amount int64) {
	dt.Date = DateFromDayIndex(satAdd(dt.Date.DayIndex(), amount))
}

// carryClock adds amount to a clock field with the given period, returning
// the new field value and the carry into the next coarser unit. Truncated
// div/mod plus a one-step adjustment keeps every intermediate in range for
// any int64 amount.
func carryClock(field, amount, period int64) (int64, int64) {
	carry := amount / period
	total := field + amount%period
	if total < 0 {
		total += period
		carry--
	} else if total >= period {
		total -= period
		carry++
	}
	return total, carry
}

func (dt *DateTime) addHours(amount int64) {
	total, carry := carryClock(int64(dt.Time.Hour), amount, 24)
	dt.Time.Hour = int(total)
	if carry != 0 {
		dt.addDays(carry)
	}
}

func (dt *DateTime) addMinutes(amount int64) {
	total, carry := carryClock(int64(dt.Time.Minute), amount, 60)
	dt.Time.Minute = int(total)
	if carry != 0 {
		dt.addHours(carry)
	}
}

func (dt *DateTime) addSeconds(amount int64) {
	total, carry := carryClock(int64(dt.Time.Second), amount, 60)
	dt.Time.Second = int(total)
	if carry != 0 {
		dt.addMinutes(carry)
	}
}

func (dt *DateTime) addNanoseconds(amount int64) {
	total, carry := carryClock(int64(dt.Time.Nanosecond), amount, 1_000_000_000)
	dt.Time.Nanosecond = int(total)
	if carry != 0 {
		dt.addSeconds(carry)
	}
}

// addSubSeconds rescales milli- or microseconds into whole seconds plus a
// nanosecond remainder, so no intermediate product can overflow.
func (dt *DateTime) addSubSeconds(amount, perSecond int64) {
	secs := amount / perSecond
	rem := amount % perSecond
	if secs != 0 {
		dt.addSeconds(secs)
	}
	if rem != 0 {
		dt.addNanoseconds(rem * (1_000_000_000 / perSecond))
	}
}

// WithTimeZone converts the datetime to another zone, shifting the
// wall-clock fields by the offset delta. Converting to the zone it already
// has is a no-op.
func (dt DateTime) WithTimeZone(zone TimeZone) DateTime {
	if zone == dt.Zone {
		return dt
	}
	out := dt
	if delta := zone.OffsetMinutes() - dt.Zone.OffsetMinutes(); delta != 0 {
		out.AddSelf(UnitMinutes, delta)
	}
	out.Zone = zone
	return out
}

// UnixSeconds returns whole seconds since 1970-01-01T00:00:00Z. A leap
// second slot (second 60) counts as 59.
func (dt DateTime) UnixSeconds() int64 {
	u := dt.WithTimeZone(UTC)
	days := u.Date.DayIndex() - unixEpochDayIndex
	sec := u.Time.Second
	if sec > 59 {
		sec = 59
	}
	clock := int64(u.Time.Hour)*3600 + int64(u.Time.Minute)*60 + int64(sec)
	return satAdd(satMul(days, 86400), clock)
}

// UnixMilliseconds returns milliseconds since the unix epoch.
func (dt DateTime) UnixMilliseconds() int64 {
	return satAdd(satMul(dt.UnixSeconds(), 1_000), int64(dt.Time.Nanosecond)/1_000_000)
}

// UnixMicroseconds returns microseconds since the unix epoch.
func (dt DateTime) UnixMicroseconds() int64 {
	return satAdd(satMul(dt.UnixSeconds(), 1_000_000), int64(dt.Time.Nanosecond)/1_000)
}

// UnixNanoseconds returns nanoseconds since the unix epoch.
func (dt DateTime) UnixNanoseconds() int64 {
	return satAdd(satMul(dt.UnixSeconds(), 1_000_000_000), int64(dt.Time.Nanosecond))
}

// FromUnixSeconds returns the UTC datetime n seconds after the unix epoch.
func FromUnixSeconds(n int64) DateTime {
	return unixEpoch.Add(UnitSeconds, n)
}

// FromUnixMilliseconds returns the UTC datetime n milliseconds after the
// unix epoch.
func FromUnixMilliseconds(n int64) DateTime {
	return unixEpoch.Add(UnitMilliseconds, n)
}

// FromUnixMicroseconds returns the UTC datetime n microseconds after the
// unix epoch.
func FromUnixMicroseconds(n int64) DateTime {
	return unixEpoch.Add(UnitMicroseconds, n)
}

// FromUnixNanoseconds returns the UTC datetime n nanoseconds after the unix
// epoch.
func FromUnixNanoseconds(n int64) DateTime {
	return unixEpoch.Add(UnitNanoseconds, n)
}

// Now reads the host wall clock as a UTC DateTime. This is the package's
// only impure operation.
func Now() DateTime {
	t := time.Now().UTC()
	return FromUnixSeconds(t.Unix()).Add(UnitNanoseconds, int64(t.Nanosecond()))
}
