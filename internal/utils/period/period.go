// Package period resolves the date windows used by list views from raw,
// untrusted query values. Nothing here returns an error: malformed input
// falls back to the caller's defaults.
package period

import (
	"strings"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Range is an inclusive window of calendar days. A zero bound is open.
type Range struct {
	From        time.Time
	To          time.Time
	FromDisplay string
	ToDisplay   string
}

// HasFrom reports whether the lower bound is set.
func (r Range) HasFrom() bool { return !r.From.IsZero() }

// HasTo reports whether the upper bound is set.
func (r Range) HasTo() bool { return !r.To.IsZero() }

// Contains reports whether the calendar day of t lies inside the range.
func (r Range) Contains(t time.Time) bool {
	d := Day(t)
	if r.HasFrom() && d.Before(r.From) {
		return false
	}
	if r.HasTo() && d.After(r.To) {
		return false
	}
	return true
}

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FirstDayOfMonth returns the first calendar day of t's month.
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the last calendar day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// CurrentMonthDays is the default day window of most list views: the first
// and last day of now's month.
func CurrentMonthDays(now time.Time) (time.Time, time.Time) {
	return FirstDayOfMonth(now), LastDayOfMonth(now)
}

// ParseDay parses an ISO calendar date.
func ParseDay(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseMonth parses a YYYY-MM value into the first day of that month.
func ParseMonth(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(MonthLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Days resolves a day-level range. Missing or malformed bounds take the given
// defaults, and a "to" before "from" is clamped to "from".
func Days(fromRaw, toRaw string, defaultFrom, defaultTo time.Time) Range {
	from, ok := ParseDay(fromRaw)
	if !ok {
		from = Day(defaultFrom)
	}
	to, ok := ParseDay(toRaw)
	if !ok {
		to = Day(defaultTo)
	}
	if to.Before(from) {
		to = from
	}
	return Range{
		From:        from,
		To:          to,
		FromDisplay: from.Format(DayLayout),
		ToDisplay:   to.Format(DayLayout),
	}
}

// MonthPolicy decides what a missing month bound defaults to.
type MonthPolicy int

const (
	// MonthCurrent defaults missing bounds to now's month.
	MonthCurrent MonthPolicy = iota
	// MonthPrevious defaults missing bounds to the calendar month before now.
	MonthPrevious
	// MonthUnbounded leaves missing bounds open.
	MonthUnbounded
)

func (p MonthPolicy) String() string {
	switch p {
	case MonthCurrent:
		return "current"
	case MonthPrevious:
		return "previous"
	case MonthUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

func (p MonthPolicy) fallback(now time.Time) (time.Time, bool) {
	switch p {
	case MonthCurrent:
		return FirstDayOfMonth(now), true
	case MonthPrevious:
		return FirstDayOfMonth(FirstDayOfMonth(now).AddDate(0, -1, 0)), true
	default:
		return time.Time{}, false
	}
}

// Months resolves a month-level range and expands it to days: the first day
// of the "from" month through the last day of the "to" month.
func Months(fromRaw, toRaw string, policy MonthPolicy, now time.Time) Range {
	fromMonth, hasFrom := ParseMonth(fromRaw)
	if !hasFrom {
		fromMonth, hasFrom = policy.fallback(now)
	}
	toMonth, hasTo := ParseMonth(toRaw)
	if !hasTo {
		toMonth, hasTo = policy.fallback(now)
	}
	if hasFrom && hasTo && toMonth.Before(fromMonth) {
		toMonth = fromMonth
	}

	var r Range
	if hasFrom {
		r.From = FirstDayOfMonth(fromMonth)
		r.FromDisplay = fromMonth.Format(MonthLayout)
	}
	if hasTo {
		r.To = LastDayOfMonth(toMonth)
		r.ToDisplay = toMonth.Format(MonthLayout)
	}
	return r
}
