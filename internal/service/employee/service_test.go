package employee

import (
	"context"
	"testing"

	domain "github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]domain.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp domain.Employee) (domain.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return domain.Employee{}, domain.ErrEmailExists
		}
	}
	f.employees[emp.UID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (domain.Employee, error) {
	emp, ok := f.employees[uid]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (domain.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp domain.Employee) error {
	if _, ok := f.employees[emp.UID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	f.employees[emp.UID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, uid string, active bool) error {
	emp, ok := f.employees[uid]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	emp.IsActive = &active
	f.employees[uid] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, uid string) error {
	if _, ok := f.employees[uid]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(f.employees, uid)
	return nil
}

type fakeJWTRepo struct {
	revokedFor []string
}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, uid string, token string, expiresAt int64) error {
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error { return nil }

func (f *fakeJWTRepo) RevokeAllForUser(ctx context.Context, uid string) error {
	f.revokedFor = append(f.revokedFor, uid)
	return nil
}

func newTestService(repo *fakeEmployeeRepo, jwtRepo *fakeJWTRepo) *EmployeeServiceImpl {
	svc := NewEmployeeService(nil, repo, jwtRepo)
	// Run multi-write flows directly; the fakes have no transactions.
	svc.tx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "admin-1",
		"role":    "admin",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeJWTRepo{})

	result, err := svc.Create(adminContext(t), domain.CreateEmployeeRequest{
		Name:          "Asha Verma",
		Email:         "Asha@Example.com",
		EmpCode:       "E001",
		MonthlySalary: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.UID)
	assert.Equal(t, "asha@example.com", result.Email, "email is lowercased")
	assert.Equal(t, "admin-1", result.CreatedBy)
	assert.True(t, result.IsActive, "new employees start active")
}

func TestCreateInvalidSalary(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeJWTRepo{})

	_, err := svc.Create(adminContext(t), domain.CreateEmployeeRequest{
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		EmpCode:       "E001",
		MonthlySalary: decimal.Zero,
	})
	assert.Error(t, err)
}

func TestDeactivateRevokesSessions(t *testing.T) {
	repo := newFakeEmployeeRepo()
	jwtRepo := &fakeJWTRepo{}
	svc := newTestService(repo, jwtRepo)
	ctx := adminContext(t)

	created, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		EmpCode:       "E001",
		MonthlySalary: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.UID))

	got, err := svc.Get(ctx, created.UID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, []string{created.UID}, jwtRepo.revokedFor)

	require.NoError(t, svc.Reactivate(ctx, created.UID))
	got, err = svc.Get(ctx, created.UID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeJWTRepo{})
	ctx := adminContext(t)

	created, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		EmpCode:       "E001",
		MonthlySalary: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	newSalary := decimal.NewFromInt(35000)
	updated, err := svc.Update(ctx, domain.UpdateEmployeeRequest{
		UID:           created.UID,
		MonthlySalary: &newSalary,
	})
	require.NoError(t, err)

	assert.True(t, updated.MonthlySalary.Equal(newSalary))
	assert.Equal(t, "Asha Verma", updated.Name, "untouched fields survive")
}

func TestDeleteMissing(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeJWTRepo{})

	err := svc.Delete(adminContext(t), "ghost")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
