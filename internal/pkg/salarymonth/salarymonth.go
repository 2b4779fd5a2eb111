// Package salarymonth computes salary-month windows: date intervals that
// start on a configurable day of month instead of the 1st. The window
// containing 2024-03-03 with start day 6 is [2024-02-06, 2024-03-05].
package salarymonth

import (
	"fmt"
	"time"
)

const (
	// DefaultStartDay is used whenever no portal setting is stored.
	DefaultStartDay = 6

	MinStartDay = 1
	MaxStartDay = 28
)

const keyLayout = "2006-01"

// Window is an inclusive date interval [Start, End]. Both bounds are
// midnight UTC dates; only the calendar date component is meaningful.
type Window struct {
	Start time.Time
	End   time.Time
}

func clampStartDay(startDay int) int {
	if startDay < MinStartDay {
		return DefaultStartDay
	}
	return startDay
}

// anchoredDay returns the window anchor day for the given year/month,
// clamping startDay to the month's last day so February never overflows.
func anchoredDay(year int, month time.Month, startDay int) int {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if startDay > lastDay {
		return lastDay
	}
	return startDay
}

// For returns the salary-month window containing ref. Days before the
// month's anchor belong to the window that started the previous month.
func For(ref time.Time, startDay int) Window {
	startDay = clampStartDay(startDay)

	year, month := ref.Year(), ref.Month()
	anchor := time.Date(year, month, anchoredDay(year, month, startDay), 0, 0, 0, 0, time.UTC)

	if ref.Day() < anchor.Day() {
		prev := ref.AddDate(0, 0, -ref.Day()) // last day of previous month
		year, month = prev.Year(), prev.Month()
		anchor = time.Date(year, month, anchoredDay(year, month, startDay), 0, 0, 0, 0, time.UTC)
	}

	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	nextAnchor := time.Date(next.Year(), next.Month(),
		anchoredDay(next.Year(), next.Month(), startDay), 0, 0, 0, 0, time.UTC)

	return Window{
		Start: anchor,
		End:   nextAnchor.AddDate(0, 0, -1),
	}
}

// Key returns the canonical sortable identifier of w, the "YYYY-MM" of its
// start date.
func Key(w Window) string {
	return w.Start.Format(keyLayout)
}

// FromKey reconstructs the window identified by a "YYYY-MM" key. For every
// valid key, Key(FromKey(key, d)) == key.
func FromKey(key string, startDay int) (Window, error) {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return Window{}, fmt.Errorf("invalid salary month key %q: %w", key, err)
	}

	startDay = clampStartDay(startDay)
	anchor := time.Date(t.Year(), t.Month(),
		anchoredDay(t.Year(), t.Month(), startDay), 0, 0, 0, 0, time.UTC)

	return For(anchor, startDay), nil
}

// Days returns every date of w in ascending order.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the calendar date of t falls inside w.
func (w Window) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(w.Start) && !d.After(w.End)
}

// SundaysIn returns every Sunday of w as "YYYY-MM-DD" strings.
func SundaysIn(w Window) []string {
	var sundays []string
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d.Format("2006-01-02"))
		}
	}
	return sundays
}

// SundaysInYear returns every Sunday of the calendar year as "YYYY-MM-DD"
// strings, ascending.
func SundaysInYear(year int) []string {
	var sundays []string
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for ; d.Weekday() != time.Sunday; d = d.AddDate(0, 0, 1) {
	}
	for ; d.Year() == year; d = d.AddDate(0, 0, 7) {
		sundays = append(sundays, d.Format("2006-01-02"))
	}
	return sundays
}
