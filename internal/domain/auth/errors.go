package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")

	// ErrAccountDeactivated is the blocking exit of role resolution: the
	// employee profile exists but IsActive is explicitly false. The session
	// is force-signed-out before this is surfaced.
	ErrAccountDeactivated = errors.New("your account has been deactivated, please contact the administrator")

	// ErrNoPortalProfile means the identity authenticated with the provider
	// but has neither an admin nor an employee profile.
	ErrNoPortalProfile = errors.New("no portal profile for this account")
)
