package isodate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustDateTime(t *testing.T, s string) DateTime {
	t.Helper()
	dt, err := ParseDateTime(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return dt
}

func TestUnixEpochAnchor(t *testing.T) {
	epoch := FromUnixSeconds(0)
	assert.Equal(t, DateTime{Date: Date{Year: 1970, Month: 1, Day: 1}}, epoch)
	assert.Equal(t, "1970-01-01T00:00:00Z", epoch.String())
	assert.Equal(t, int64(0), epoch.UnixSeconds())
}

func TestUnixSecondsRoundTrip(t *testing.T) {
	for _, x := range []int64{
		0, 1, -1, 59, 60, 86399, 86400, -86400, -86401,
		1684200043, -62167219200, 253402300799, -2208988800,
	} {
		assert.Equal(t, x, FromUnixSeconds(x).UnixSeconds(), "unix %d", x)
	}

	// Year 0 sits 719528 days before the epoch.
	assert.Equal(t, int64(-62167219200), mustDateTime(t, "0000-01-01T00:00:00Z").UnixSeconds())
	assert.Equal(t, DateTime{Date: Date{Year: 1969, Month: 12, Day: 31}, Time: Time{Hour: 23, Minute: 59, Second: 59}},
		FromUnixSeconds(-1))
}

func TestUnixKnownInstant(t *testing.T) {
	dt := mustDateTime(t, "2023-05-15T21:20:43.123-04:00")
	assert.Equal(t, int64(1684200043), dt.UnixSeconds())
	assert.Equal(t, int64(1684200043123), dt.UnixMilliseconds())
	assert.Equal(t, int64(1684200043123000), dt.UnixMicroseconds())
	assert.Equal(t, int64(1684200043123000000), dt.UnixNanoseconds())
}

func TestFromUnixSubSecond(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00.001Z", FromUnixMilliseconds(1).String())
	assert.Equal(t, "1969-12-31T23:59:59.999Z", FromUnixMilliseconds(-1).String())
	assert.Equal(t, "1970-01-01T00:00:00.000000001Z", FromUnixNanoseconds(1).String())
	assert.Equal(t, "1969-12-31T23:59:59.999999Z", FromUnixMicroseconds(-1).String())

	for _, x := range []int64{0, 1, -1, 999, -999, 1_000_001, -1_000_001, 1684200043123} {
		assert.Equal(t, x, FromUnixMilliseconds(x).UnixMilliseconds(), "milli %d", x)
		assert.Equal(t, x, FromUnixMicroseconds(x).UnixMicroseconds(), "micro %d", x)
		assert.Equal(t, x, FromUnixNanoseconds(x).UnixNanoseconds(), "nano %d", x)
	}
}

func TestAddInvertibility(t *testing.T) {
	dt := mustDateTime(t, "2023-05-15T21:20:43.123456789-04:00")
	units := []Unit{
		UnitYears, UnitMonths, UnitDays, UnitHours, UnitMinutes,
		UnitSeconds, UnitMilliseconds, UnitMicroseconds, UnitNanoseconds,
	}
	amounts := []int64{1, 2, 7, 25, 61, 1000, 1_000_000, 123_456_789}
	for _, u := range units {
		for _, n := range amounts {
			got := dt.Add(u, n).Add(u, -n)
			if got != dt {
				t.Fatalf("add %d %v: %v -> %v", n, u, dt, got)
			}
			got = dt.Add(u, -n).Add(u, n)
			if got != dt {
				t.Fatalf("add -%d %v: %v -> %v", n, u, dt, got)
			}
		}
	}
}

func TestAddCarries(t *testing.T) {
	dt := mustDateTime(t, "2023-05-15T23:59:59.999999999Z")
	assert.Equal(t, "2023-05-16T00:00:00Z", dt.Add(UnitNanoseconds, 1).String())
	assert.Equal(t, "2023-05-16T00:00:00.000000999Z", dt.Add(UnitMicroseconds, 1).String())
	assert.Equal(t, "2023-05-16T00:00:00.000000999Z", dt.Add(UnitNanoseconds, 1000).String())

	midnight := mustDateTime(t, "2023-01-01T00:00:00Z")
	assert.Equal(t, "2022-12-31T23:00:00Z", midnight.Add(UnitHours, -1).String())
	assert.Equal(t, "2022-12-31T23:59:00Z", midnight.Add(UnitMinutes, -1).String())
	assert.Equal(t, "2022-12-31T23:59:59Z", midnight.Add(UnitSeconds, -1).String())
	assert.Equal(t, "2022-12-31T23:59:59.999Z", midnight.Add(UnitMilliseconds, -1).String())

	assert.Equal(t, "2024-02-29T00:00:00Z", mustDateTime(t, "2024-02-28T00:00:00Z").Add(UnitHours, 24).String())
	assert.Equal(t, "2023-03-01T00:00:00Z", mustDateTime(t, "2023-02-28T00:00:00Z").Add(UnitDays, 1).String())
}

func TestAddMonthsClampsDay(t *testing.T) {
	jan31 := mustDateTime(t, "2023-01-31T12:00:00Z")
	assert.Equal(t, Date{Year: 2023, Month: 2, Day: 28}, jan31.Add(UnitMonths, 1).Date)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, jan31.Add(UnitMonths, 13).Date)
	assert.Equal(t, Date{Year: 2023, Month: 4, Day: 30}, jan31.Add(UnitMonths, 3).Date)
	assert.Equal(t, Date{Year: 2022, Month: 11, Day: 30}, jan31.Add(UnitMonths, -2).Date)

	feb29 := mustDateTime(t, "2024-02-29T12:00:00Z")
	assert.Equal(t, Date{Year: 2025, Month: 2, Day: 28}, feb29.Add(UnitYears, 1).Date)
	assert.Equal(t, Date{Year: 2023, Month: 2, Day: 28}, feb29.Add(UnitYears, -1).Date)
}

func TestWithTimeZone(t *testing.T) {
	dt := mustDateTime(t, "2023-05-15T21:20:43.123-04:00")

	utc := dt.WithTimeZone(UTC)
	assert.Equal(t, "2023-05-16T01:20:43.123Z", utc.String())

	// Shifting back restores the wall clock exactly.
	minus4 := FixedZone(UTCOffset{Negative: true, Hours: 4})
	assert.Equal(t, dt, utc.WithTimeZone(minus4))

	// Same zone is a no-op, UTC to +00:00 only retags.
	assert.Equal(t, dt, dt.WithTimeZone(minus4))
	zero := utc.WithTimeZone(FixedZone(UTCOffset{}))
	assert.Equal(t, utc.Date, zero.Date)
	assert.Equal(t, utc.Time, zero.Time)
	assert.Equal(t, "2023-05-16T01:20:43.123+00:00", zero.String())

	half := dt.WithTimeZone(FixedZone(UTCOffset{Hours: 5, Minutes: 30}))
	assert.Equal(t, "2023-05-16T06:50:43.123+05:30", half.String())
	assert.Equal(t, dt.UnixNanoseconds(), half.UnixNanoseconds())
}

func TestLeapSecondClamp(t *testing.T) {
	t59 := mustDateTime(t, "2016-12-31T23:59:59Z")
	t60 := mustDateTime(t, "2016-12-31T23:59:60Z")
	assert.Equal(t, 60, t60.Time.Second)
	assert.Equal(t, t59.UnixSeconds(), t60.UnixSeconds())
	// The stored field itself is never rewritten.
	assert.Equal(t, "2016-12-31T23:59:60Z", t60.String())
}

func TestNow(t *testing.T) {
	now := Now()
	assert.Equal(t, UTC, now.Zone)
	assert.True(t, now.Date.Year >= 2024)
}
