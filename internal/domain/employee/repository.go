package employee

import "context"

// EmployeeRepository defines data access for employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByUID returns ErrEmployeeNotFound when no profile exists.
	GetByUID(ctx context.Context, uid string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List returns every known employee, active or not.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// SetActive flips the soft deactivation flag.
	SetActive(ctx context.Context, uid string, active bool) error

	// Delete is the explicit administrative hard delete.
	Delete(ctx context.Context, uid string) error
}
