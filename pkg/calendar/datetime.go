package calendar

import (
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
)

const (
	longDateLayout = "January 2, 2006"
	clockLayout    = "3:04 PM"
)

// ParseEventDate validates a YYYY-MM-DD date and returns it normalized.
func ParseEventDate(dateStr string) (string, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return "", fmt.Errorf("%w: date", domain.ErrMissingField)
	}
	t, err := time.Parse(entities.DateLayout, dateStr)
	if err != nil {
		return "", domain.ErrInvalidDate
	}
	return t.Format(entities.DateLayout), nil
}

// ParseEventTime validates a 24-hour HH:MM time and returns it normalized.
func ParseEventTime(timeStr string) (string, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return "", fmt.Errorf("%w: time", domain.ErrMissingField)
	}
	t, err := time.Parse(entities.TimeLayout, timeStr)
	if err != nil {
		return "", domain.ErrInvalidTime
	}
	return t.Format(entities.TimeLayout), nil
}

// FormatLongDate renders "2025-03-15" as "March 15, 2025". Unparseable input
// is returned unchanged.
func FormatLongDate(date string) string {
	t, err := time.Parse(entities.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(longDateLayout)
}

// FormatClock renders "14:30" as "2:30 PM". Unparseable input is returned
// unchanged.
func FormatClock(clock string) string {
	t, err := time.Parse(entities.TimeLayout, clock)
	if err != nil {
		return clock
	}
	return t.Format(clockLayout)
}

// IsEventDay reports whether now, seen from loc, falls on date.
func IsEventDay(date string, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(entities.DateLayout) == date
}
