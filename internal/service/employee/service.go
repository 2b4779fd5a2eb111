package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtRepo      postgresql.JWTRepository

	// tx wraps multi-write flows; swappable so tests run without a pool.
	tx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, jwtRepo postgresql.JWTRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		jwtRepo:      jwtRepo,
		tx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	uid, ok := claims["user_id"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return uid, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	creator, err := actorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		UID:           uuid.New().String(),
		Name:          req.Name,
		Email:         strings.ToLower(req.Email),
		EmpCode:       req.EmpCode,
		MonthlySalary: req.MonthlySalary,
		CreatedBy:     creator,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, uid string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByUID(ctx, uid)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUID(ctx, req.UID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = strings.ToLower(*req.Email)
	}
	if req.EmpCode != nil {
		emp.EmpCode = *req.EmpCode
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = *req.MonthlySalary
	}
	emp.UpdatedAt = time.Now()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService. Existing refresh tokens are
// revoked so the employee cannot silently renew a session that the next role
// resolution would reject.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, uid string) error {
	return s.tx(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.SetActive(ctx, uid, false); err != nil {
			return err
		}

		if err := s.jwtRepo.RevokeAllForUser(ctx, uid); err != nil {
			return fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		return nil
	})
}

// Reactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Reactivate(ctx context.Context, uid string) error {
	return s.employeeRepo.SetActive(ctx, uid, true)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, uid string) error {
	err := s.employeeRepo.Delete(ctx, uid)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		UID:           emp.UID,
		Name:          emp.Name,
		Email:         emp.Email,
		EmpCode:       emp.EmpCode,
		MonthlySalary: emp.MonthlySalary,
		IsActive:      emp.Active(),
		CreatedBy:     emp.CreatedBy,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
	}
}
