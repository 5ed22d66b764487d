package util

import (
	"fmt"
	"time"
)

var dateTimeLayouts = []string{
	time.RFC3339,          // 2024-03-01T10:00:00+01:00
	"2006-01-02T15:04:05", // 2024-03-01T10:00:00
	"2006-01-02 15:04:05", // 2024-03-01 10:00:00
	"2006-01-02",          // 2024-03-01
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseDateTime parses a datetime in any of the accepted layouts.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// MonthRange returns the closed range covering a YYYY-MM month:
// [first instant of the month, 23:59:59 of its last calendar day].
func MonthRange(yearMonth string) (start, end time.Time, err error) {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", yearMonth, err)
	}
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}

// ISODateOrNil formats a date pointer as YYYY-MM-DD, or nil.
func ISODateOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// ISOTimeOrNil formats a time pointer as ISO-8601, or nil.
func ISOTimeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
