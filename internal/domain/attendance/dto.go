package attendance

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	EmployeeUID string `json:"employee_uid"`
	Status      Status `json:"status"`
	LeaveReason string `json:"leave_reason"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, leave, or off",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EarlyOffRequest struct {
	EmployeeUID string `json:"employee_uid"`
}

func (r *EarlyOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Date            string   `json:"-"`
	EmployeeUID     string   `json:"-"`
	Status          *Status  `json:"status"`
	LateMinutes     *int     `json:"late_minutes"`
	EarlyLeaveHours *float64 `json:"early_leave_hours"`
	LeaveReason     *string  `json:"leave_reason"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.EmployeeUID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_uid",
			Message: "employee_uid is required",
		})
	}

	if r.Status != nil && !ValidStatus(*r.Status) && *r.Status != StatusLate {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, late, leave, or off",
		})
	}

	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_minutes",
			Message: "late_minutes must not be negative",
		})
	}

	if r.EarlyLeaveHours != nil && *r.EarlyLeaveHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_leave_hours",
			Message: "early_leave_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	SalaryMonthKey  string   `json:"salary_month_key"`
	Date            string   `json:"date"`
	EmployeeUID     string   `json:"employee_uid"`
	Status          Status   `json:"status"`
	InTime          *string  `json:"in_time,omitempty"`
	OutTime         *string  `json:"out_time,omitempty"`
	LateMinutes     *int     `json:"late_minutes,omitempty"`
	EarlyLeaveHours *float64 `json:"early_leave_hours,omitempty"`
	LeaveReason     *string  `json:"leave_reason,omitempty"`
	MarkedBy        string   `json:"marked_by"`
}
