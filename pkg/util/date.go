package util

import "time"

// DateOnly strips the time component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LookbackWindow computes the [start, end] date range for a rolling lookback
// of `days` ending at `now` (date precision), with both bounds shifted back by
// `shift` to account for feature-materialization lag.
func LookbackWindow(now time.Time, days int, shift time.Duration) (start, end time.Time) {
	end = DateOnly(now)
	start = end.AddDate(0, 0, -days)
	return start.Add(-shift), end.Add(-shift)
}
