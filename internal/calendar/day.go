// Package calendar provides a timezone-naive calendar day.
//
// A Day is the local wall-clock date the user lived through, with no
// time-of-day and no zone. Converting a time.Time to a Day reads the
// date in that time's own location, so "today" for a user in UTC+5 at
// 01:00 is their local date, not the UTC one.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format of a Day.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day counts calendar days since 1970-01-01. Days are comparable with ==
// and ordered with <, and subtracting two Days yields whole days.
type Day int

// Date builds a Day from its calendar components. Out-of-range values
// normalize the way time.Date does (month 13 is January of next year).
func Date(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// FromTime returns the wall-clock date of t in t's own location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Parse reads a Day in YYYY-MM-DD form. Surrounding whitespace is ignored.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return FromTime(t), nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.Time().Format(Layout)
}

// AddDays returns the day n days later (earlier when n is negative).
func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

// Yesterday is shorthand for d.AddDays(-1).
func (d Day) Yesterday() Day {
	return d - 1
}

// Sub returns the signed number of days from other to d.
func (d Day) Sub(other Day) int {
	return int(d - other)
}

// Weekday reports the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysBetween is the absolute number of calendar days separating a and b.
func DaysBetween(a, b Day) int {
	n := a.Sub(b)
	if n < 0 {
		return -n
	}
	return n
}

// MarshalText implements encoding.TextMarshaler so Days serialize as
// YYYY-MM-DD in JSON, YAML and map keys.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
