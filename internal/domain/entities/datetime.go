package entities

import (
	"errors"
	"time"
)

// Input and display formats for event start times. Times are interpreted in
// the local timezone.
const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
)

// DateTimeConstraints is shown when a datetime value is rejected.
const DateTimeConstraints = "DateTime should be of the format YYYY-MM-DD HH:MM and must be a valid date and time"

// timeNow returns the current time (can be swapped in tests).
var timeNow = time.Now

// DateTime is a validated instant with minute precision.
type DateTime struct {
	Time time.Time
}

// NewDateTime parses a "YYYY-MM-DD HH:MM" value in local time.
func NewDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, errors.New(DateTimeConstraints)
	}
	return DateTime{Time: t}, nil
}

// NewDate parses a bare "YYYY-MM-DD" value as midnight local time.
func NewDate(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return DateTime{}, errors.New(DateTimeConstraints)
	}
	return DateTime{Time: t}, nil
}

// String returns the canonical "YYYY-MM-DD HH:MM" form.
func (d DateTime) String() string {
	return d.Time.Format(DateTimeLayout)
}

// Equal reports whether both values denote the same instant.
func (d DateTime) Equal(other DateTime) bool {
	return d.Time.Equal(other.Time)
}

// Before reports whether d is strictly before other.
func (d DateTime) Before(other DateTime) bool {
	return d.Time.Before(other.Time)
}
