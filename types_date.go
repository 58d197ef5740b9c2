package taxform

import (
	"fmt"
	"strings"
	"time"
)

// The documents print dates in different shapes: the salary certificate uses
// European dotted dates, the brokerage export abbreviates the month, and
// command-line flags accept a permissive ISO form. All three are read
// leniently (single-digit day or month is fine).
const (
	certificateDateFormat = "2.1.2006"   // e.g. 16.01.2024 or 5.3.2024
	brokerDateFormat      = "Jan-2-2006" // e.g. Jan-16-2024
	isoDateFormat         = "2006-1-2"   // e.g. 2024-07-01 or 2024-7-1
)

// DateFormat is the format used to display dates in reports, day first, the
// way the tax form expects them.
const DateFormat = "02.01.2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in the report display format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare orders two days chronologically. It returns -1 when d is before x,
// 0 when they are the same day, and +1 when d is after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// dateLayouts are tried in order: certificate dates first, then the
// brokerage export, then ISO for flags and tests.
var dateLayouts = []string{certificateDateFormat, brokerDateFormat, isoDateFormat}

// ParseDate parses a Date from any of the representations found in the input
// documents. Tokens that are not dates at all (award numbers, prices) fail
// every layout and are reported as an error.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range dateLayouts {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want one of the formats %q", str, dateLayouts)
}

// MustParse is like ParseDate but panics on error.
func MustParse(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
