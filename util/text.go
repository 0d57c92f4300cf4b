package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// BuildName joins a first and last name, either of which may be empty.
func BuildName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// TimeAgo renders t relative to now ("5 minutes ago"). Future or near-zero
// deltas collapse to "just now".
func TimeAgo(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	switch {
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
