package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate reads a calendar day (YYYY-MM-DD) as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ParseDateTime accepts RFC3339 or a bare date.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return ParseDate(s)
}
