package isodate

import "fmt"

// Time is a time of day. The second may be 60 so that the leap-second slot
// stays representable; nothing interprets it specially beyond the unix
// conversions, which clamp it to 59.
type Time struct {
	Hour       int // 0..23
	Minute     int // 0..59
	Second     int // 0..60
	Nanosecond int // 0..999_999_999
}

// Midnight is the zero time of day.
var Midnight = Time{}

// NewTime builds a time of day. Out-of-range fields are a programmer
// error and panic: Time values are only ever made from already-validated or
// already-parsed data.
func NewTime(hour, minute, second, nanosecond int) Time {
	if hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 60 ||
		nanosecond < 0 || nanosecond > 999_999_999 {
		panic(fmt.Sprintf("isodate: NewTime: %02d:%02d:%02d.%09d out of range",
			hour, minute, second, nanosecond))
	}
	return Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}
}
