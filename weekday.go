package isodate

// Weekday is a day of the week, Monday = 0 through Sunday = 6. This matches
// the ISO 8601 ordering where Monday opens the week; the ISO textual digit
// for a weekday is Weekday+1.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(invalid)"
	}
	return weekdayNames[d]
}

// Add steps n days around the week, wrapping in both directions.
func (d Weekday) Add(n int) Weekday {
	return Weekday(floorMod(int64(d)+int64(n), 7))
}

// ISODigit returns the ISO 8601 weekday number, 1 for Monday through 7 for
// Sunday.
func (d Weekday) ISODigit() int {
	return int(d) + 1
}

// WeekdayFromISODigit converts an ISO weekday digit 1..7 to a Weekday.
func WeekdayFromISODigit(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return Monday, ErrOverflow
	}
	return Weekday(n - 1), nil
}
