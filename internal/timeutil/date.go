package timeutil

import (
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Date is a calendar date without a time-of-day component. It marshals to
// and from ISO 8601 "YYYY-MM-DD" strings and is always anchored to UTC
// midnight so comparisons behave like plain date comparisons.
//
// Null handling: when unmarshaling JSON null, the existing value is
// preserved (not zeroed). This matches the behavior of the standard
// library's time.Time.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates a time.Time to its UTC calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses an ISO 8601 "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use ISO date format (YYYY-MM-DD)", s)
	}
	return Date{Time: t.UTC()}, nil
}

// AddYears returns the date shifted by the given number of years.
func (d Date) AddYears(years int) Date {
	return FromTime(d.Time.AddDate(years, 0, 0))
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// String returns the ISO 8601 representation.
func (d Date) String() string {
	return d.Time.Format(time.DateOnly)
}

// MarshalJSON implements json.Marshaler with the fixed YYYY-MM-DD format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null preserves the
// existing value, matching time.Time stdlib behavior.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// Schema implements huma.SchemaProvider so request and response bodies
// describe Date fields as "string, format: date" rather than reflecting
// the wrapped time.Time struct.
func (d Date) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:     huma.TypeString,
		Format:   "date",
		Examples: []any{"1990-06-15"},
	}
}
