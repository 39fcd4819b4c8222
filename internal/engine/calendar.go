package engine

import (
	"fmt"
	"time"

	"github.com/theirongolddev/stash/internal/model"
)

// DateLayout is the calendar-date form used throughout the engine.
// Dates in this form compare correctly as strings.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// Today returns the current civil date in the reference timezone.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}

// NextDay returns the calendar day after date.
func NextDay(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, 1).Format(DateLayout)
}

// isBusinessDay reports whether t falls on Monday through Friday.
func isBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// QualifiesOn reports whether date is a qualifying day: a business day
// (Mon-Fri) not covered by any exclusion range.
func QualifiesOn(date string, exclusions []model.DateRange) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return isBusinessDay(t) && !IsExcluded(date, exclusions)
}

// CountQualifyingDays counts qualifying days in the inclusive range
// [start, end]. Returns 0 when start is after end or either date is
// malformed.
func CountQualifyingDays(start, end string, exclusions []model.DateRange) int {
	from, err := ParseDate(start)
	if err != nil {
		return 0
	}
	to, err := ParseDate(end)
	if err != nil {
		return 0
	}

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) && !IsExcluded(d.Format(DateLayout), exclusions) {
			count++
		}
	}
	return count
}
