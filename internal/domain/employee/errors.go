package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrEmailExists             = errors.New("email already registered")
	ErrInvalidMonthlySalary    = errors.New("monthly salary must be positive")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already deactivated")
)
