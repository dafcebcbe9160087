package kerbal

import (
	"fmt"
	"math"
	"time"
)

const (
	// KerbinDay is the length of a Kerbin solar day in seconds (6 hours).
	KerbinDay = 6 * 3600
	// KerbinYear is the length of a Kerbin year in seconds (426 days).
	KerbinYear = 426 * KerbinDay
)

// maxDurationSeconds is the longest time.Duration, in seconds (about 292 years).
const maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

// Representable returns whether the number of seconds fits in a time.Duration.
func Representable(seconds float64) bool {
	return math.Abs(seconds) < maxDurationSeconds
}

// ToDuration converts seconds to a time.Duration, keeping sub-second precision.
// Values which do not fit are clamped to the longest duration of that sign.
func ToDuration(seconds float64) time.Duration {
	ns := seconds * float64(time.Second)
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// KerbinDuration formats a number of seconds as the in-game clock does,
// with 6 hour days and 426 day years, e.g. "1y 12d 03:25:07".
// Fractions of a second are truncated. Waits too long to count return "never".
func KerbinDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.Abs(seconds) >= math.MaxInt64 {
		return "never"
	}
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	s := int64(math.Floor(seconds))
	years := s / KerbinYear
	s %= KerbinYear
	days := s / KerbinDay
	s %= KerbinDay
	return fmt.Sprintf("%s%dy %dd %02d:%02d:%02d", sign, years, days, s/3600, (s%3600)/60, s%60)
}
