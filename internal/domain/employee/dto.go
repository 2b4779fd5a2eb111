package employee

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	EmpCode       string          `json:"emp_code"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if validator.IsEmpty(r.EmpCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_code",
			Message: "emp_code is required",
		})
	}

	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	UID           string           `json:"-"`
	Name          *string          `json:"name"`
	Email         *string          `json:"email"`
	EmpCode       *string          `json:"emp_code"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.MonthlySalary != nil && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	UID           string          `json:"uid"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	EmpCode       string          `json:"emp_code"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	IsActive      bool            `json:"is_active"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     string          `json:"created_at"`
}
