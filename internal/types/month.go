// Package types implements special types for the paisaflow backend.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year and timezone. It is used to
// filter transactions and reports to a budgeting period.
type Month time.Time

// NewMonth returns a new Month in the given location.
func NewMonth(year int, month time.Month, loc *time.Location) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it
// represents in the given location.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return NewMonth(t.Year(), t.Month(), loc), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The month is
// expected as a "YYYY-MM" string and is interpreted in UTC. Callers
// that need the month in the target timezone use ParseMonth directly.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value, time.UTC)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Next returns the first instant of the following month.
func (m Month) Next() Month {
	t := time.Time(m)
	return Month(time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()))
}

// Equal reports whether m and n represent the same instant.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month. The
// comparison is done on instants, so it is correct for transactions
// stored in a different timezone than the month itself.
func (m Month) Contains(t time.Time) bool {
	start := time.Time(m)
	end := time.Time(m.Next())
	return !t.Before(start) && t.Before(end)
}
