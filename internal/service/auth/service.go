package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/oauth"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    user.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwtRepo      postgresql.JWTRepository
	jwtSvc       jwt.Service
	googleSvc    oauth.GoogleService
}

func NewAuthService(
	adminRepo user.AdminRepository,
	employeeRepo employee.EmployeeRepository,
	jwtRepo postgresql.JWTRepository,
	jwtSvc jwt.Service,
	googleSvc oauth.GoogleService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtRepo:      jwtRepo,
		jwtSvc:       jwtSvc,
		googleSvc:    googleSvc,
	}
}

// Resolve implements auth.AuthService. The chain is strictly ordered: admin
// profile first, then employee profile, then the active check. An identity
// with neither profile exits Unauthorized; a deactivated employee exits
// Deactivated without a role.
func (s *AuthServiceImpl) Resolve(ctx context.Context, uid, email string) (auth.Resolution, error) {
	res := auth.Resolution{
		State: user.StateRoleResolving,
		UID:   uid,
		Email: email,
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		res.State = user.StateActive
		res.Role = user.RoleAdmin
		res.UID = admin.UID
		res.Profile = admin
		return res, nil
	}
	if !errors.Is(err, user.ErrAdminNotFound) {
		return auth.Resolution{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			res.State = user.StateUnauthorized
			return res, nil
		}
		return auth.Resolution{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.Active() {
		res.State = user.StateDeactivated
		res.UID = emp.UID
		return res, nil
	}

	res.State = user.StateActive
	res.Role = user.RoleEmployee
	res.UID = emp.UID
	res.Profile = emp
	return res, nil
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleSvc.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	info, err := s.googleSvc.FetchProfile(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	res, err := s.Resolve(ctx, info.GoogleID, info.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	switch res.State {
	case user.StateActive:
		return s.issueTokens(ctx, res)
	case user.StateDeactivated:
		// Forced sign-out: a deactivated account must not keep a renewable
		// session.
		if err := s.jwtRepo.RevokeAllForUser(ctx, res.UID); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		return auth.LoginResponse{}, auth.ErrAccountDeactivated
	default:
		return auth.LoginResponse{}, auth.ErrNoPortalProfile
	}
}

// LoginAdmin implements auth.AuthService.
func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.AdminLoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	if admin.PasswordHash == nil {
		// Provider-only account, no password bootstrap.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, auth.Resolution{
		State:   user.StateActive,
		Role:    user.RoleAdmin,
		UID:     admin.UID,
		Email:   admin.Email,
		Profile: admin,
	})
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	parsed, err := jwtauth.VerifyToken(s.jwtSvc.JWTAuth(), refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := parsed.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	uid, _ := claims["user_id"].(string)
	if uid == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked || s.jwtSvc.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	// Re-run resolution so a deactivation between logins takes effect at the
	// next refresh, not at token expiry.
	res, err := s.resolveByUID(ctx, uid)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	switch res.State {
	case user.StateActive:
		// Rotate: old token out, new pair in.
		if err := s.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to rotate refresh token: %w", err)
		}
		s.jwtSvc.RevokeToken(refreshToken)
		return s.issueTokens(ctx, res)
	case user.StateDeactivated:
		if err := s.jwtRepo.RevokeAllForUser(ctx, uid); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		return auth.LoginResponse{}, auth.ErrAccountDeactivated
	default:
		return auth.LoginResponse{}, auth.ErrNoPortalProfile
	}
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.jwtSvc.RevokeToken(refreshToken)
	return nil
}

// resolveByUID is the refresh-time variant of Resolve: the stable uid is the
// only identity carried inside a refresh token.
func (s *AuthServiceImpl) resolveByUID(ctx context.Context, uid string) (auth.Resolution, error) {
	res := auth.Resolution{State: user.StateRoleResolving, UID: uid}

	admin, err := s.adminRepo.GetByUID(ctx, uid)
	if err == nil {
		res.State = user.StateActive
		res.Role = user.RoleAdmin
		res.Email = admin.Email
		res.Profile = admin
		return res, nil
	}
	if !errors.Is(err, user.ErrAdminNotFound) {
		return auth.Resolution{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	emp, err := s.employeeRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			res.State = user.StateUnauthorized
			return res, nil
		}
		return auth.Resolution{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.Active() {
		res.State = user.StateDeactivated
		return res, nil
	}

	res.State = user.StateActive
	res.Role = user.RoleEmployee
	res.Email = emp.Email
	res.Profile = emp
	return res, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, res auth.Resolution) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtSvc.GenerateAccessToken(res.UID, res.Email, res.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtSvc.GenerateRefreshToken(res.UID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.jwtRepo.CreateRefreshToken(ctx, res.UID, refreshToken, refreshExp); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
		Role:                  res.Role,
		Profile:               res.Profile,
	}, nil
}
