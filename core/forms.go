package core

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and form format of calendar dates.
const DateLayout = "2006-01-02"

// PadClock turns `HH:MM` into `HH:MM:SS`; anything else is returned trimmed.
func PadClock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}

// ShortClock turns `HH:MM:SS` into `HH:MM` for display in forms.
func ShortClock(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// Atoi returns 0 for empty or malformed input.
func Atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// ParseFloat returns 0 for empty or malformed input.
func ParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// OptFloat parses an optional number; blank input gives nil.
func OptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// IDString renders a foreign key for a form; the zero ID is blank.
func IDString(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}

// FloatString renders a number without trailing zeros; nil is blank.
func FloatString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// ParseDate parses a `YYYY-MM-DD` date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}
