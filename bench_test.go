package isodate

import (
	"testing"
	"time"
)

var benchInputs = []string{
	"2023-05-15",
	"20230515",
	"2023-135",
	"2023-W20-1",
	"2023-05-15T21:20:43Z",
	"2023-05-15T21:20:43.123456789-04:00",
	"20230515T212043.123-0400",
	"+12345-06-07T08:09:10Z",
}

func BenchmarkParseDateTime(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, in := range benchInputs {
			if _, err := ParseDateTime(in); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkParseDate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseDate("2023-05-15"); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline against the standard library on the one form both sides accept.
func BenchmarkStdlibRFC3339(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := time.Parse(time.RFC3339, "2023-05-15T21:20:43.123456789-04:00"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDayIndexRoundTrip(b *testing.B) {
	b.ReportAllocs()
	d := Date{Year: 2023, Month: 5, Day: 15}
	for i := 0; i < b.N; i++ {
		if DateFromDayIndex(d.DayIndex()) != d {
			b.Fatal("round trip mismatch")
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	dt := MustParseDateTime("2023-05-15T21:20:43.123-04:00")
	for i := 0; i < b.N; i++ {
		_ = dt.String()
	}
}
