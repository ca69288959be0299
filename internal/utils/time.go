package utils

import (
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/constants"
)

// ParseDate parses an API date (YYYY-MM-DD) as midnight in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ShortTime trims an API time (HH:MM:SS) to HH:MM. Anything else is returned unchanged.
func ShortTime(timeStr string) string {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format(constants.ShortTimeFormat)
}

// Weekday returns the short day name for an API date, or "" if it doesn't parse.
func Weekday(dateStr string) string {
	t, err := ParseDate(dateStr, time.UTC)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
