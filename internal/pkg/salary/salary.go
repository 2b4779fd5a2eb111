// Package salary holds the deduction arithmetic. Everything here is pure:
// the caller resolves settings and attendance counts, this package only
// turns them into money.
package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy carries the fixed pay-cycle constants threaded into every
// computation instead of being read ambiently.
type Policy struct {
	// CycleDays divides the monthly salary into a daily rate.
	CycleDays int

	// WorkingHoursPerDay divides the daily rate into an hourly rate.
	WorkingHoursPerDay int

	// LateCutoffMinutes is the minute-of-day at or after which a clock-in
	// counts as late.
	LateCutoffMinutes int

	// DayEndMinutes is the minute-of-day of the normal end of the working
	// day; clocking out earlier accrues early-leave hours.
	DayEndMinutes int

	// LatePenaltyFraction is the share of a daily rate deducted per late
	// mark.
	LatePenaltyFraction float64
}

// DefaultPolicy returns the standing pay-cycle constants: a 30-day cycle,
// 8 working hours, a 10:15 late cutoff, an 18:15 day end, and half a daily
// rate per late mark.
func DefaultPolicy() Policy {
	return Policy{
		CycleDays:           30,
		WorkingHoursPerDay:  8,
		LateCutoffMinutes:   10*60 + 15,
		DayEndMinutes:       18*60 + 15,
		LatePenaltyFraction: 0.5,
	}
}

// Deductions itemizes the salary adjustments for one salary month.
type Deductions struct {
	Off        decimal.Decimal
	Late       decimal.Decimal
	EarlyLeave decimal.Decimal

	// Total never exceeds the monthly salary.
	Total decimal.Decimal
}

// Calculate derives the itemized deductions from a base monthly salary and
// attendance counts. offDays must already include the unmarked days the
// caller folds in; the function is total over non-negative inputs.
func Calculate(monthly decimal.Decimal, offDays, lateCount int, earlyLeaveHours float64, p Policy) Deductions {
	daily := monthly.Div(decimal.NewFromInt(int64(p.CycleDays)))
	hourly := daily.Div(decimal.NewFromInt(int64(p.WorkingHoursPerDay)))

	d := Deductions{
		Off: daily.Mul(decimal.NewFromInt(int64(offDays))),
		Late: daily.
			Mul(decimal.NewFromFloat(p.LatePenaltyFraction)).
			Mul(decimal.NewFromInt(int64(lateCount))),
		EarlyLeave: hourly.Mul(decimal.NewFromFloat(earlyLeaveHours)),
	}

	d.Total = d.Off.Add(d.Late).Add(d.EarlyLeave)
	if d.Total.GreaterThan(monthly) {
		d.Total = monthly
	}
	return d
}

// NetSalary returns the monthly salary minus the total deduction, clamped
// at zero.
func NetSalary(monthly decimal.Decimal, d Deductions) decimal.Decimal {
	net := monthly.Sub(d.Total)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsLate reports whether a clock-in at t is at or past the late cutoff.
func IsLate(t time.Time, p Policy) bool {
	return minuteOfDay(t) >= p.LateCutoffMinutes
}

// LateMinutes returns how many minutes past the cutoff t is, floored at 0.
func LateMinutes(t time.Time, p Policy) int {
	m := minuteOfDay(t) - p.LateCutoffMinutes
	if m < 0 {
		return 0
	}
	return m
}

// EarlyLeaveHours returns the fractional hours between a clock-out at t and
// the normal day end, or 0 when t is at or past it.
func EarlyLeaveHours(t time.Time, p Policy) float64 {
	remaining := p.DayEndMinutes - minuteOfDay(t)
	if remaining <= 0 {
		return 0
	}
	return float64(remaining) / 60
}
