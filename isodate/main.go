package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/araddon/isodate"
	"github.com/scylladb/termtables"
)

var precision = -1

func main() {
	flag.IntVar(&precision, "precision", -1, "fraction digits in output, -1 trims trailing zeros")
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass   ./isodate "2023-05-15T21:20:43.123-04:00"`)
		return
	}
	input := flag.Args()[0]

	dt, err := isodate.ParseDateTime(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %q: %v\n", input, err)
		os.Exit(1)
	}

	wd := dt.Date.WeekDate()

	table := termtables.CreateTable()
	table.AddHeaders("Field", "Value")
	table.AddRow("Input", input)
	table.AddRow("DateTime", dt.Format(precision))
	table.AddRow("UTC", dt.WithTimeZone(isodate.UTC).Format(precision))
	table.AddRow("Unix seconds", strconv.FormatInt(dt.UnixSeconds(), 10))
	table.AddRow("Unix nanos", strconv.FormatInt(dt.UnixNanoseconds(), 10))
	table.AddRow("Day index", strconv.FormatInt(dt.Date.DayIndex(), 10))
	table.AddRow("Day of year", strconv.Itoa(dt.Date.DayOfYear()+1))
	table.AddRow("Week date", wd.String())
	table.AddRow("Weekday", dt.Date.Weekday().String())
	table.AddRow("Leap year", strconv.FormatBool(dt.Date.IsLeapYear()))

	fmt.Println(table.Render())
}
