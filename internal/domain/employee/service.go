package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, uid string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-disables the account; the employee keeps their
	// attendance history and is blocked at sign-in.
	Deactivate(ctx context.Context, uid string) error
	Reactivate(ctx context.Context, uid string) error

	Delete(ctx context.Context, uid string) error
}
