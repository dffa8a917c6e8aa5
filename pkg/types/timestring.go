package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a string is not a valid HH:MM time
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// TimeString represents a time of day in "HH:MM" format (e.g. "10:30").
// It is stored as a plain string so it can travel through JSON and SQL
// without conversion, while still supporting time arithmetic.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only HH:MM
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String returns the underlying "HH:MM" value
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Both values must be valid; invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := time.Parse(timeLayout, string(t))
	b, errB := time.Parse(timeLayout, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := time.Parse(timeLayout, string(t))
	b, errB := time.Parse(timeLayout, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result must stay within the same day: shifting past midnight returns
// an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %q + %d minutes crosses midnight", string(t), minutes)
	}

	return TimeString(shifted.Format(timeLayout)), nil
}
