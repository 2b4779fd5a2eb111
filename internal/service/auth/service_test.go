package auth

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]user.Admin // by email
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin user.Admin) (user.Admin, error) {
	f.admins[admin.Email] = admin
	return admin, nil
}

func (f *fakeAdminRepo) GetByUID(ctx context.Context, uid string) (user.Admin, error) {
	for _, a := range f.admins {
		if a.UID == uid {
			return a, nil
		}
	}
	return user.Admin{}, user.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (user.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return user.Admin{}, user.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdminRepo) List(ctx context.Context) ([]user.Admin, error) { return nil, nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // by email
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.Email] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UID == uid {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e, ok := f.employees[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, uid string, active bool) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, uid string) error { return nil }

type fakeJWTRepo struct {
	stored  map[string]string // token -> uid
	revoked map[string]bool
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{stored: make(map[string]string), revoked: make(map[string]bool)}
}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, uid string, token string, expiresAt int64) error {
	f.stored[token] = uid
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeJWTRepo) RevokeAllForUser(ctx context.Context, uid string) error {
	for token, owner := range f.stored {
		if owner == uid {
			f.revoked[token] = true
		}
	}
	return nil
}

func newTestService(adminRepo *fakeAdminRepo, empRepo *fakeEmployeeRepo, jwtRepo *fakeJWTRepo) *AuthServiceImpl {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "168h")
	return NewAuthService(adminRepo, empRepo, jwtRepo, jwtSvc, nil)
}

func activeEmployee(uid, email string) employee.Employee {
	return employee.Employee{
		UID:           uid,
		Email:         email,
		Name:          "Ravi Kumar",
		MonthlySalary: decimal.NewFromInt(30000),
	}
}

func TestResolveAdminWinsOverEmployee(t *testing.T) {
	adminRepo := &fakeAdminRepo{admins: map[string]user.Admin{
		"boss@example.com": {UID: "admin-1", Email: "boss@example.com"},
	}}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"boss@example.com": activeEmployee("emp-9", "boss@example.com"),
	}}
	svc := newTestService(adminRepo, empRepo, newFakeJWTRepo())

	res, err := svc.Resolve(context.Background(), "ignored", "boss@example.com")
	require.NoError(t, err)

	assert.Equal(t, user.StateActive, res.State)
	assert.Equal(t, user.RoleAdmin, res.Role)
	assert.Equal(t, "admin-1", res.UID)
}

func TestResolveActiveEmployee(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ravi@example.com": activeEmployee("emp-1", "ravi@example.com"),
	}}
	svc := newTestService(&fakeAdminRepo{admins: map[string]user.Admin{}}, empRepo, newFakeJWTRepo())

	res, err := svc.Resolve(context.Background(), "ignored", "ravi@example.com")
	require.NoError(t, err)

	assert.Equal(t, user.StateActive, res.State)
	assert.Equal(t, user.RoleEmployee, res.Role)
	assert.Equal(t, "emp-1", res.UID)
}

func TestResolveDeactivatedEmployee(t *testing.T) {
	inactive := activeEmployee("emp-1", "ravi@example.com")
	off := false
	inactive.IsActive = &off

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ravi@example.com": inactive,
	}}
	svc := newTestService(&fakeAdminRepo{admins: map[string]user.Admin{}}, empRepo, newFakeJWTRepo())

	res, err := svc.Resolve(context.Background(), "ignored", "ravi@example.com")
	require.NoError(t, err)

	assert.Equal(t, user.StateDeactivated, res.State)
	assert.Empty(t, res.Role)
}

func TestResolveUnknownIdentity(t *testing.T) {
	svc := newTestService(
		&fakeAdminRepo{admins: map[string]user.Admin{}},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		newFakeJWTRepo(),
	)

	res, err := svc.Resolve(context.Background(), "ignored", "nobody@example.com")
	require.NoError(t, err)

	assert.Equal(t, user.StateUnauthorized, res.State)
}

func TestLoginAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)

	adminRepo := &fakeAdminRepo{admins: map[string]user.Admin{
		"boss@example.com": {UID: "admin-1", Email: "boss@example.com", PasswordHash: &hashStr},
	}}
	jwtRepo := newFakeJWTRepo()
	svc := newTestService(adminRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, jwtRepo)

	resp, err := svc.LoginAdmin(context.Background(), auth.AdminLoginRequest{
		Email:    "boss@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, user.RoleAdmin, resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin-1", jwtRepo.stored[resp.RefreshToken])
}

func TestLoginAdminWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)

	adminRepo := &fakeAdminRepo{admins: map[string]user.Admin{
		"boss@example.com": {UID: "admin-1", Email: "boss@example.com", PasswordHash: &hashStr},
	}}
	svc := newTestService(adminRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, newFakeJWTRepo())

	_, err = svc.LoginAdmin(context.Background(), auth.AdminLoginRequest{
		Email:    "boss@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ravi@example.com": activeEmployee("emp-1", "ravi@example.com"),
	}}
	jwtRepo := newFakeJWTRepo()
	svc := newTestService(&fakeAdminRepo{admins: map[string]user.Admin{}}, empRepo, jwtRepo)

	first, err := svc.issueTokens(context.Background(), auth.Resolution{
		State: user.StateActive,
		Role:  user.RoleEmployee,
		UID:   "emp-1",
		Email: "ravi@example.com",
	})
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, second.AccessToken)
	assert.True(t, jwtRepo.revoked[first.RefreshToken], "old refresh token is revoked")

	// The rotated-out token must not refresh again.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshDeactivatedEmployeeRevokesAll(t *testing.T) {
	inactive := activeEmployee("emp-1", "ravi@example.com")
	off := false
	inactive.IsActive = &off

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ravi@example.com": inactive,
	}}
	jwtRepo := newFakeJWTRepo()
	svc := newTestService(&fakeAdminRepo{admins: map[string]user.Admin{}}, empRepo, jwtRepo)

	tokens, err := svc.issueTokens(context.Background(), auth.Resolution{
		State: user.StateActive,
		Role:  user.RoleEmployee,
		UID:   "emp-1",
		Email: "ravi@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrAccountDeactivated)
	assert.True(t, jwtRepo.revoked[tokens.RefreshToken])
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(
		&fakeAdminRepo{admins: map[string]user.Admin{}},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		newFakeJWTRepo(),
	)

	accessToken, _, err := jwt.NewJWTService("test-secret", "1h", "168h").
		GenerateAccessToken("emp-1", "ravi@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ravi@example.com": activeEmployee("emp-1", "ravi@example.com"),
	}}
	jwtRepo := newFakeJWTRepo()
	svc := newTestService(&fakeAdminRepo{admins: map[string]user.Admin{}}, empRepo, jwtRepo)

	tokens, err := svc.issueTokens(context.Background(), auth.Resolution{
		State: user.StateActive,
		Role:  user.RoleEmployee,
		UID:   "emp-1",
		Email: "ravi@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))
	assert.True(t, jwtRepo.revoked[tokens.RefreshToken])
}
