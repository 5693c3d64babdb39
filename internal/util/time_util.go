package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// TruncateToDate drops the time of day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return TruncateToDate(time.Now().UTC())
}

// SettleHourUTC is the hour after which the current day's closes and the
// ECB reference rates are final for every supported market.
const SettleHourUTC = 22

// SettledDate is the latest date whose daily close is final at now.
func SettledDate(now time.Time) time.Time {
	now = now.UTC()
	today := TruncateToDate(now)
	if now.Hour() >= SettleHourUTC {
		return today
	}
	return today.AddDate(0, 0, -1)
}

func IsBusinessDay(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// BusinessDays lists every Mon-Fri date in [start, end].
func BusinessDays(start, end time.Time) []time.Time {
	out := []time.Time{}
	current := TruncateToDate(start)
	last := TruncateToDate(end)
	for DateLte(current, last) {
		if IsBusinessDay(current) {
			out = append(out, current)
		}
		current = current.AddDate(0, 0, 1)
	}
	return out
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

func DaysBetween(start, end time.Time) int {
	return int(TruncateToDate(end).Sub(TruncateToDate(start)).Hours() / 24)
}

// MissingRange returns the smallest [from, to] covering every business day in
// [start, end] that is absent from observed. Gaps strictly between two observed
// dates are treated as market holidays and ignored.
func MissingRange(observed []time.Time, start, end time.Time) (time.Time, time.Time, bool) {
	seen := map[string]bool{}
	var first, last time.Time
	for _, d := range observed {
		d = TruncateToDate(d)
		seen[d.Format(layout)] = true
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}

	var from, to time.Time
	found := false
	for _, day := range BusinessDays(start, end) {
		if seen[day.Format(layout)] {
			continue
		}
		if len(seen) > 0 && day.After(first) && day.Before(last) {
			continue
		}
		if !found {
			from = day
			found = true
		}
		to = day
	}

	return from, to, found
}
