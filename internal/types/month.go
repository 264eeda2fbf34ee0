// Package types implements special types for the staffing budget backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrMonthAbbreviation = errors.New("the month must be one of Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec")
	ErrYear              = errors.New("the year must have four digits")
	ErrPeriodFormat      = errors.New("the period must be formatted as 'Mon YYYY', e.g. 'Mar 2025'")
)

var yearPattern = regexp.MustCompile("^[0-9]{4}$")

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Abbr returns the three letter abbreviation of the month, e.g. "Mar".
func (m Month) Abbr() string {
	return time.Time(m).Month().String()[:3]
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Label returns the month in the "Mon YYYY" form used to name periods.
func (m Month) Label() string {
	return fmt.Sprintf("%s %04d", m.Abbr(), m.Year())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be an RFC3339 timestamp, a full date
// or a "YYYY-MM" string. Everything except year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02T15:04:05Z07:00"
	switch {
	case regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$").MatchString(value):
		pattern = "2006-01-02"
	case regexp.MustCompile("^[0-9]{4}-[0-9]{2}$").MatchString(value):
		pattern = "2006-01"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// ParseMonthYear parses a month abbreviation ("Mar", case insensitive) and
// a four digit year ("2025").
func ParseMonthYear(month, year string) (Month, error) {
	abbr := cases.Title(language.English).String(strings.TrimSpace(month))

	var parsedMonth time.Month
	for candidate := time.January; candidate <= time.December; candidate++ {
		if candidate.String()[:3] == abbr {
			parsedMonth = candidate
			break
		}
	}

	if parsedMonth == 0 {
		return Month{}, fmt.Errorf("%w, got '%s'", ErrMonthAbbreviation, month)
	}

	year = strings.TrimSpace(year)
	if !yearPattern.MatchString(year) {
		return Month{}, fmt.Errorf("%w, got '%s'", ErrYear, year)
	}

	y, _ := strconv.Atoi(year)
	return NewMonth(y, parsedMonth), nil
}

// ParsePeriod parses a period label like "Mar 2025".
func ParsePeriod(s string) (Month, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Month{}, ErrPeriodFormat
	}

	return ParseMonthYear(fields[0], fields[1])
}

// Scan writes the value from the database.
func (m *Month) Scan(value any) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Range returns n consecutive months starting with m.
func (m Month) Range(n int) []Month {
	months := make([]Month, 0, n)
	for i := range n {
		months = append(months, m.AddDate(0, i))
	}

	return months
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
