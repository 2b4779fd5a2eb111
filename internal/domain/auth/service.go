package auth

import "context"

// AuthService owns sign-in, role resolution, and the token lifecycle.
type AuthService interface {
	// LoginWithGoogle finishes the provider exchange for an OAuth code and
	// runs role resolution. A Deactivated resolution revokes the identity's
	// refresh tokens and returns ErrAccountDeactivated.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)

	// LoginAdmin is the password bootstrap path for admin accounts.
	LoginAdmin(ctx context.Context, req AdminLoginRequest) (LoginResponse, error)

	// Resolve walks the role-resolution state machine for an authenticated
	// identity (admin lookup, employee lookup, active check).
	Resolve(ctx context.Context, uid, email string) (Resolution, error)

	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
