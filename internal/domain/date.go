package domain

import "time"

// ParseDate parses a "YYYY-MM-DD" civil date in the business zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, BusinessZone)
}
