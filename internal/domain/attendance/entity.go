package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
	StatusOff     Status = "off"
)

// ValidStatus reports whether s is one of the markable statuses. "late" is
// never requested directly; it is derived from a "present" mark past the
// cutoff.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusLeave, StatusOff:
		return true
	}
	return false
}

// Record is one attendance mark, keyed by (salary month key, date, employee).
// At most one record exists per (date, employee); the early-off correction
// mutates that record instead of creating a second one.
type Record struct {
	SalaryMonthKey  string
	Date            string // YYYY-MM-DD
	EmployeeUID     string
	Status          Status
	InTime          *time.Time
	OutTime         *time.Time
	LateMinutes     *int
	EarlyLeaveHours *float64
	LeaveReason     *string
	MarkedBy        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
