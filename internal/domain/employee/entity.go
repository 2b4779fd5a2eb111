package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	UID           string
	Name          string
	Email         string
	EmpCode       string
	MonthlySalary decimal.Decimal
	// IsActive nil means active; deactivation is always a soft flag, never a
	// delete in the attendance path.
	IsActive  *bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active resolves the soft flag: absent means active.
func (e Employee) Active() bool {
	return e.IsActive == nil || *e.IsActive
}
