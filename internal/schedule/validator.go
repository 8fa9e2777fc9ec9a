package schedule

import (
	"errors"
	"regexp"
	"time"
)

var ErrMalformedTime = errors.New("malformed schedule time")

// inputPattern is the exact shape a user-supplied schedule time must
// have: four-digit year, two-digit month/day/hour/minute, a dash-dash
// date, one space, a colon separated time. Anything else is rejected
// before parsing.
var inputPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

const (
	inputLayout = "2006-01-02 15:04"
	wireLayout  = "2006-01-02T15:04:05"
)

// Validate parses a "YYYY-MM-DD HH:mm" string into a canonical instant
// with seconds fixed at zero. The pattern gate catches wrong separators
// and missing digits; time.Parse catches impossible dates behind a
// well-shaped string. Past instants are accepted.
func Validate(text string) (time.Time, error) {
	if !inputPattern.MatchString(text) {
		return time.Time{}, ErrMalformedTime
	}
	t, err := time.Parse(inputLayout, text)
	if err != nil {
		return time.Time{}, ErrMalformedTime
	}
	return t, nil
}

// FormatWire renders an instant the way the order API expects scheduled
// times: ISO date-time with explicit :00 seconds.
func FormatWire(t time.Time) string {
	return t.Format(wireLayout)
}
