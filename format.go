package isodate

import (
	"fmt"
	"strconv"
	"strings"
)

// Textual output is always ISO 8601 extended format. Years outside 0..9999
// carry an explicit sign and at least four digits.

func formatYear(year int64) string {
	switch {
	case year >= 0 && year <= 9999:
		return fmt.Sprintf("%04d", year)
	case year > 9999:
		return "+" + strconv.FormatInt(year, 10)
	case year >= -9999:
		return fmt.Sprintf("-%04d", -year)
	default:
		return strconv.FormatInt(year, 10)
	}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), d.Month, d.Day)
}

// String renders the week date as YYYY-Www-D with the ISO weekday digit.
func (w WeekDate) String() string {
	return fmt.Sprintf("%s-W%02d-%d", formatYear(w.Year), w.Week, w.Day.ISODigit())
}

// formatFraction renders the sub-second suffix including the leading dot.
// precision -1 trims trailing zeros and omits the suffix entirely for zero
// nanoseconds; precision 0 always omits it; larger precisions truncate or
// zero-pad to exactly that many digits.
func formatFraction(nanosecond, precision int) string {
	if precision == 0 || (precision < 0 && nanosecond == 0) {
		return ""
	}
	digits := fmt.Sprintf("%09d", nanosecond)
	switch {
	case precision < 0:
		digits = strings.TrimRight(digits, "0")
	case precision <= 9:
		digits = digits[:precision]
	default:
		digits += strings.Repeat("0", precision-9)
	}
	return "." + digits
}

// String renders the time of day as HH:MM:SS with any nonzero fraction
// trimmed of trailing zeros.
func (t Time) String() string {
	return t.format(-1)
}

func (t Time) format(precision int) string {
	return fmt.Sprintf("%02d:%02d:%02d%s",
		t.Hour, t.Minute, t.Second, formatFraction(t.Nanosecond, precision))
}

// String renders the offset as ±hh:mm.
func (o UTCOffset) String() string {
	sign := "+"
	if o.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, o.Hours, o.Minutes)
}

// String renders the zone designator: "Z" for UTC, ±hh:mm otherwise.
func (tz TimeZone) String() string {
	if !tz.fixed {
		return "Z"
	}
	return tz.offset.String()
}

// String renders the datetime as YYYY-MM-DDTHH:MM:SS[.fraction]Z|±hh:mm,
// emitting the fraction only when nanoseconds are nonzero.
func (dt DateTime) String() string {
	return dt.Format(-1)
}

// Format renders the datetime with explicit fraction precision; see
// formatFraction for the precision contract.
func (dt DateTime) Format(precision int) string {
	return dt.Date.String() + "T" + dt.Time.format(precision) + dt.Zone.String()
}
